package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/check_in"
)

func newCheckinCmd() *cobra.Command {
	var (
		date   string
		office string
	)

	cmd := &cobra.Command{
		Use:   "checkin [resource]",
		Short: "Check in to a booking for the day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			var resource string
			if len(args) == 1 {
				resource = args[0]
			}

			uc := check_in.NewUseCase(a.directory, a.client, a.log)
			resp, err := uc.Execute(cmd.Context(), &check_in.Request{
				UserID:   a.user.ID,
				OfficeID: a.officeID(office),
				Resource: resource,
				Date:     date,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.CheckedIn(resp, a.loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", `date ("today", "tomorrow", "15/3", "2024-03-15")`)
	cmd.Flags().StringVar(&office, "office", "", "office id (defaults to the configured office)")
	return cmd
}
