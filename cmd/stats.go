package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/analyzer"
	"github.com/cardwise/cardwise/internal/srs"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		user := userID(cmd)

		stages, err := s.Items().CountByStage(ctx, user)
		if err != nil {
			return err
		}
		if len(stages) > 0 {
			fmt.Printf("Items: %d new, %d learning, %d review\n\n",
				stages[srs.StageNew], stages[srs.StageLearning], stages[srs.StageReview])
		}

		svc := analyzer.NewService(s.Reviews(), s.Params(), nil)
		report, err := svc.Analyze(ctx, user)
		if err != nil {
			return err
		}
		if report.TotalReviews == 0 {
			fmt.Println("No reviews recorded yet.")
			return nil
		}

		fmt.Printf("Reviews analyzed : %d\n", report.TotalReviews)
		fmt.Printf("Retention rate   : %.0f%%\n", report.RetentionRate*100)
		fmt.Printf("Mean ease        : %.2f\n", report.MeanEase)
		fmt.Printf("Avg answer time  : %.1fs\n", report.AvgTimeSecs)

		if len(report.Tags) > 0 {
			fmt.Println("\nBy tag (worst first):")
			for _, st := range report.Tags {
				fmt.Printf("  %-20s %3.0f%%  (%d reviews)\n", st.Tag, st.SuccessRate()*100, st.Total)
			}
		}
		return nil
	},
}
