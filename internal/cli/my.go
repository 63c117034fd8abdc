package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/my_bookings"
)

func newMyCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "my",
		Short: "List your upcoming bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			horizon := days
			if horizon <= 0 {
				horizon = a.cfg.HorizonDays
			}

			uc := my_bookings.NewUseCase(a.client, a.loc, a.log)
			resp, err := uc.Execute(cmd.Context(), &my_bookings.Request{
				UserID: a.user.ID,
				Days:   horizon,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.MyBookings(resp, a.loc))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "horizon in days from today (defaults to the configured horizon)")
	return cmd
}
