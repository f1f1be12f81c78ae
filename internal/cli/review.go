package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/wire"
)

// ReviewCmd returns the review command.
func ReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Generate the weekly review for the trailing week",
		RunE: func(cmd *cobra.Command, args []string) error {
			endFlag, _ := cmd.Flags().GetString("week-ending")

			weekEnding := time.Now()
			if endFlag != "" {
				parsed, err := time.Parse("2006-01-02", endFlag)
				if err != nil {
					return fmt.Errorf("invalid --week-ending date %q (want YYYY-MM-DD)", endFlag)
				}
				weekEnding = parsed
			}

			review, err := wire.ReviewService().GenerateWeeklyReview(cmd.Context(), weekEnding)
			if err != nil {
				return err
			}

			fmt.Println(review.Markdown())
			return nil
		},
	}
	cmd.Flags().String("week-ending", "", "Week-ending date (YYYY-MM-DD), default today")
	return cmd
}
