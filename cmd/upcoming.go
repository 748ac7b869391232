package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/store"
)

var (
	upcomingDays  int
	upcomingTags  []string
	upcomingLimit int
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List items due in the coming days",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		filter := store.ItemFilter{Tags: upcomingTags}
		items, err := s.Items().Upcoming(cmd.Context(), userID(cmd), time.Now(), upcomingDays, filter, upcomingLimit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Printf("Nothing scheduled in the next %d day(s).\n", upcomingDays)
			return nil
		}

		for _, it := range items {
			printItemLine(it)
		}
		return nil
	},
}

func init() {
	upcomingCmd.Flags().IntVar(&upcomingDays, "days", 7, "How many days ahead to look")
	upcomingCmd.Flags().StringSliceVar(&upcomingTags, "tags", nil, "Only items carrying all of these tags")
	upcomingCmd.Flags().IntVar(&upcomingLimit, "limit", 0, "Cap the listing (0 = no cap)")
}
