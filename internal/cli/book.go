package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/cli/render"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/book_resource"
)

func newBookCmd() *cobra.Command {
	var (
		date   string
		start  string
		end    string
		office string
	)

	cmd := &cobra.Command{
		Use:   "book <resource>",
		Short: "Book a desk, room or parking spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc := book_resource.NewUseCase(a.directory, a.client, a.log)
			resp, err := uc.Execute(cmd.Context(), &book_resource.Request{
				UserID:   a.user.ID,
				OfficeID: a.officeID(office),
				Resource: args[0],
				Date:     date,
				Start:    start,
				End:      end,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Booked(resp, a.loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", `date ("today", "tomorrow", "15/3", "2024-03-15")`)
	cmd.Flags().StringVar(&start, "start", "", `start time ("9", "9:30"; defaults to 09:00)`)
	cmd.Flags().StringVar(&end, "end", "", `end time ("19", "19hs"; defaults to 18:00)`)
	cmd.Flags().StringVar(&office, "office", "", "office id (defaults to the configured office)")
	return cmd
}
