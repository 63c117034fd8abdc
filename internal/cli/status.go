package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/status_overview"
)

func newStatusCmd() *cobra.Command {
	var office string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show desk occupancy for today and tomorrow",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc := status_overview.NewUseCase(a.directory, a.client, a.loc, a.log)
			resp, err := uc.Execute(cmd.Context(), &status_overview.Request{
				OfficeID: a.officeID(office),
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Status(resp, a.loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&office, "office", "", "office id (defaults to the configured office)")
	return cmd
}
