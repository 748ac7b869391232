package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/session"
	"github.com/cardwise/cardwise/internal/srs"
	"github.com/cardwise/cardwise/internal/store"
)

var (
	reviewTags   []string
	reviewSource string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run an interactive review session over due items",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		mgr := session.NewManager(s.Items(), s.Reviews(), s.Params(), s.Sessions(), nil)

		filter := store.ItemFilter{SourceRef: reviewSource, Tags: reviewTags}
		started, err := mgr.Start(ctx, userID(cmd), filter)
		if errors.Is(err, session.ErrNoDueItems) {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		item := started.Item
		progress := started.Progress

		for item != nil {
			fmt.Println("\n----------------------------------------")
			fmt.Printf("[%d/%d] %s\n", progress.Current+1, progress.Total, item.Front)
			fmt.Println("Press Enter to reveal...")
			if _, err := reader.ReadString('\n'); err != nil {
				return err
			}
			fmt.Println(item.Back)

			rating, err := readRating(reader)
			if err != nil {
				return err
			}

			res, err := mgr.Submit(ctx, started.SessionID, rating, session.Telemetry{})
			if err != nil {
				return err
			}
			fmt.Printf("Next review in %d day(s)\n", res.State.IntervalDays)

			if res.Done {
				printMetrics(res.Metrics)
				return nil
			}
			item = res.Next
			progress = res.Progress
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringSliceVar(&reviewTags, "tags", nil, "Only items carrying all of these tags")
	reviewCmd.Flags().StringVar(&reviewSource, "source", "", "Only items from this content source")
}

// readRating prompts until the learner enters a valid 1-5 rating.
func readRating(reader *bufio.Reader) (srs.Rating, error) {
	for {
		fmt.Print("Rate recall (1 blackout .. 5 perfect): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && srs.Rating(n).Valid() {
			return srs.Rating(n), nil
		}
		fmt.Println("Enter a number from 1 to 5.")
	}
}

func printMetrics(m *session.Metrics) {
	fmt.Println("\nSession complete.")
	fmt.Printf("  average rating : %.2f\n", m.AverageRating)
	fmt.Printf("  perfect recalls: %d\n", m.PerfectCount)
	fmt.Printf("  completion     : %.0f%%\n", m.CompletionRate*100)
}
