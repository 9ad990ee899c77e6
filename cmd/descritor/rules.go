package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/granabr/descritor/internal/cli"
	"github.com/granabr/descritor/internal/common"
	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/normalize"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage learned keyword→category rules",
	}
	cmd.AddCommand(rulesLearnCmd())
	cmd.AddCommand(rulesListCmd())
	return cmd
}

func rulesLearnCmd() *cobra.Command {
	var familyID, categoryID, subcategoryID string

	cmd := &cobra.Command{
		Use:   "learn <descriptor>",
		Short: "Record a user-corrected category for a descriptor",
		Long: `Derives the normalized keyword from the descriptor and upserts the
keyword→category association, incrementing its match counter when the
keyword was already known.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}

			descriptor := strings.Join(args, " ")
			keyword := normalize.New(t).Key(descriptor)
			if keyword == "" {
				return common.NewUserError("descriptor has no meaningful tokens", nil)
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

			if err := store.UpsertRule(ctx, model.LearnedRule{
				FamilyID:          familyID,
				NormalizedKeyword: keyword,
				CategoryID:        categoryID,
				SubcategoryID:     subcategoryID,
			}); err != nil {
				return err
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("learned %q → %s", keyword, categoryID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&familyID, "family", "default", "family scope of the rule")
	cmd.Flags().StringVar(&categoryID, "category", "", "category identifier (required)")
	cmd.Flags().StringVar(&subcategoryID, "subcategory", "", "subcategory identifier")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func rulesListCmd() *cobra.Command {
	var familyID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List learned rules for a family",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			rules, err := store.ListRules(ctx, familyID)
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				cmd.Println(cli.FormatWarning("no learned rules"))
				return nil
			}

			cmd.Println(cli.FormatTitle(fmt.Sprintf("Learned rules (%s)", familyID)))
			for _, rule := range rules {
				target := rule.CategoryID
				if rule.SubcategoryID != "" {
					target += "::" + rule.SubcategoryID
				}
				cmd.Printf("%-40s %-30s ×%d\n", rule.NormalizedKeyword, target, rule.MatchCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&familyID, "family", "default", "family scope to list")

	return cmd
}
