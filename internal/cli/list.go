package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/list_availability"
	"github.com/eternauta1337/skill-deskbird/pkg/ptr"
)

func newListCmd() *cobra.Command {
	var (
		date     string
		office   string
		typeFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a day's schedule for an office",
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

			uc := list_availability.NewUseCase(a.directory, a.client, a.loc, a.log)
			resp, err := uc.Execute(cmd.Context(), &list_availability.Request{
				OfficeID: a.officeID(office),
				Date:     date,
				Type:     typeFilter,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Availability(resp, a.loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", `date ("today", "tomorrow", "15/3", "2024-03-15")`)
	cmd.Flags().StringVar(&office, "office", "", "office id (defaults to the configured office)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "resource type (flexDesk|meetingRoom|parking|other)")
	return cmd
}
