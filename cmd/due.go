package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/srs"
	"github.com/cardwise/cardwise/internal/store"
)

var (
	dueTags   []string
	dueSource string
	dueLimit  int
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		filter := store.ItemFilter{SourceRef: dueSource, Tags: dueTags}
		items, err := s.Items().Due(cmd.Context(), userID(cmd), time.Now(), filter, dueLimit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Nothing due.")
			return nil
		}

		for _, it := range items {
			printItemLine(it)
		}
		fmt.Printf("%d item(s) due\n", len(items))
		return nil
	},
}

func init() {
	dueCmd.Flags().StringSliceVar(&dueTags, "tags", nil, "Only items carrying all of these tags")
	dueCmd.Flags().StringVar(&dueSource, "source", "", "Only items from this content source")
	dueCmd.Flags().IntVar(&dueLimit, "limit", 0, "Cap the listing (0 = no cap)")
}

func printItemLine(it *srs.StudyItem) {
	due := it.State.NextReviewAt.Format("2006-01-02")
	fmt.Printf("  %-8s  due %s  ease %.2f  %s\n", it.State.Stage, due, it.State.EaseFactor, it.Front)
}
