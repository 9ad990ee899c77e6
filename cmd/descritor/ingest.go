package main

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/granabr/descritor/internal/cli"
	"github.com/granabr/descritor/internal/common"
	"github.com/granabr/descritor/internal/fingerprint"
	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/ofx"
)

func ingestCmd() *cobra.Command {
	var categoryID, subcategoryID string

	cmd := &cobra.Command{
		Use:   "ingest <file.ofx>",
		Short: "Parse an OFX/QFX statement and fingerprint every entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}
			gen := fingerprint.New(t, fingerprint.DefaultMatchPolicy())

			file, err := os.Open(args[0])
			if err != nil {
				return common.NewUserError("could not open statement file", err)
			}
			defer func() { _ = file.Close() }()

			ctx := cmd.Context()
			entries, err := ofx.NewParser().ParseFile(ctx, file)
			if err != nil {
				return common.NewUserError("could not parse statement", err)
			}
			if len(entries) == 0 {
				cmd.Println(cli.FormatWarning("statement has no entries"))
				return nil
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(ctx); err != nil {
				return err
			}

			bar := progressbar.Default(int64(len(entries)), "fingerprinting")
			history := make([]model.HistoryEntry, 0, len(entries))
			strong := 0
			for _, entry := range entries {
				fp := gen.Generate(entry.Descriptor)
				if fp.HasStrong() {
					strong++
				}
				history = append(history, model.HistoryEntry{
					Date:          entry.Date,
					CategoryID:    categoryID,
					SubcategoryID: subcategoryID,
					MerchantKey:   fp.Key(),
					Amount:        entry.Amount,
				})
				_ = bar.Add(1)
			}

			if err := store.SaveHistory(ctx, history); err != nil {
				return err
			}
			sessionID, err := store.CreateImportSession(ctx, args[0], len(entries))
			if err != nil {
				return err
			}

			common.LogInfo("Ingested statement", common.Fields{
				"session":      sessionID,
				"entries":      len(entries),
				"strong_match": strong,
			})
			cmd.Println(cli.FormatSuccess("statement ingested"))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "uncategorized", "category recorded for the ingested entries")
	cmd.Flags().StringVar(&subcategoryID, "subcategory", "", "subcategory recorded for the ingested entries")

	return cmd
}
