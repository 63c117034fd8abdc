package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/pkg/ptr"
)

func newResourcesCmd() *cobra.Command {
	var (
		office   string
		typeFlag string
	)

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the bookable resources of an office",
		RunE: func(cmd *cobra.Command, args []string) error {
			var typeFilter *domain.ResourceType
			if typeFlag != "" {
				t, ok := domain.ParseResourceType(typeFlag)
				if !ok {
					return fmt.Errorf("unknown resource type %q", typeFlag)
				}
				typeFilter = ptr.Ptr(t)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			resolved, err := a.directory.ResolveOffice(cmd.Context(), a.officeID(office))
			if err != nil {
				return err
			}

			resources, err := a.directory.OfficeResources(cmd.Context(), resolved.ID)
			if err != nil {
				return err
			}
			resources = domain.FilterByType(resources, typeFilter)

			fmt.Fprint(cmd.OutOrStdout(), render.Resources(resolved, resources))
			return nil
		},
	}

	cmd.Flags().StringVar(&office, "office", "", "office id (defaults to the configured office)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "resource type (flexDesk|meetingRoom|parking|other)")
	return cmd
}
