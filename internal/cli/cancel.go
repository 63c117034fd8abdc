package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/cancel_booking"
)

func newCancelCmd() *cobra.Command {
	var (
		date   string
		office string
	)

	cmd := &cobra.Command{
		Use:   "cancel <resource>",
		Short: "Cancel your booking of a resource for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc := cancel_booking.NewUseCase(a.directory, a.client, a.log)
			resp, err := uc.Execute(cmd.Context(), &cancel_booking.Request{
				UserID:   a.user.ID,
				OfficeID: a.officeID(office),
				Resource: args[0],
				Date:     date,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Cancelled(resp, a.loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", `date ("today", "tomorrow", "15/3", "2024-03-15")`)
	cmd.Flags().StringVar(&office, "office", "", "office id (defaults to the configured office)")
	return cmd
}
