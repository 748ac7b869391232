package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/srs"
)

var (
	addTags   []string
	addType   string
	addSource string
)

var addCmd = &cobra.Command{
	Use:   "add <front> <back>",
	Short: "Add a study item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		user := userID(cmd)

		params, err := s.Params().Load(ctx, user)
		if err != nil {
			return err
		}

		item := &srs.StudyItem{
			ID:          uuid.NewString(),
			UserID:      user,
			Front:       args[0],
			Back:        args[1],
			ContentType: srs.ContentType(addType),
			Tags:        addTags,
			SourceRef:   addSource,
			State:       srs.NewState(params, time.Now()),
		}
		if err := s.Items().Create(ctx, item); err != nil {
			return err
		}

		fmt.Printf("Added %s (due now)\n", item.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Comma-separated tags")
	addCmd.Flags().StringVar(&addType, "type", string(srs.ContentText), "Content type: text, image, or formula")
	addCmd.Flags().StringVar(&addSource, "source", "", "Upstream content reference")
}
