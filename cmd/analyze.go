package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/analyzer"
)

var analyzeApply bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derive parameter recommendations from review history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		user := userID(cmd)
		svc := analyzer.NewService(s.Reviews(), s.Params(), nil)

		report, err := svc.Analyze(ctx, user)
		if err != nil {
			return err
		}
		rec := report.Recommendation

		fmt.Println("Recommended parameters:")
		fmt.Printf("  new items per day : %d\n", rec.NewPerDay)
		fmt.Printf("  interval modifier : %.0f%%\n", rec.IntervalModifier)
		fmt.Printf("  retention target  : %.0f%%\n", rec.RetentionTarget*100)
		if len(rec.DifficultTags) > 0 {
			fmt.Printf("  difficult tags    : %s\n", strings.Join(rec.DifficultTags, ", "))
		}

		if !analyzeApply {
			fmt.Println("\nRun with --apply to save.")
			return nil
		}

		if _, err := svc.Apply(ctx, user, rec); err != nil {
			return err
		}
		fmt.Println("\nApplied.")
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeApply, "apply", false, "Persist the recommendation")
}
