package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
)

func newOfficesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offices",
		Short: "List the offices of your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			offices, err := a.directory.Offices(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Offices(offices))
			return nil
		},
	}
}
