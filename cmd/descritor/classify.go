package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/granabr/descritor/internal/cli"
	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/nature"
)

func classifyCmd() *cobra.Command {
	var categoryID, subcategoryID, merchantKey string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the expense nature of a category/subcategory pair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			overrides, err := store.GetOverrides(ctx)
			if err != nil {
				return err
			}

			var history []model.HistoryEntry
			if subcategoryID != "" {
				history, err = store.GetHistory(ctx, categoryID, subcategoryID)
				if err != nil {
					return err
				}
			}

			resolver := nature.NewResolver(t.Nature)
			result := resolver.Classify(model.ClassificationInput{
				CategoryID:    categoryID,
				SubcategoryID: subcategoryID,
				MerchantKey:   merchantKey,
			}, overrides, history)

			cmd.Println(cli.FormatTitle("Classification"))
			cmd.Println(cli.FormatField("Nature", string(result.Nature)))
			cmd.Println(cli.FormatField("Source", string(result.Source)))
			cmd.Println(cli.FormatField("Confidence", fmt.Sprintf("%.2f", result.Confidence)))
			cmd.Println(cli.FormatField("Reason", result.Reason))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "category identifier (required)")
	cmd.Flags().StringVar(&subcategoryID, "subcategory", "", "subcategory identifier")
	cmd.Flags().StringVar(&merchantKey, "merchant", "", "merchant key for override lookup")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
