package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/granabr/descritor/internal/cli"
	"github.com/granabr/descritor/internal/normalize"
)

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <descriptor>",
		Short: "Derive the matching key for a raw statement descriptor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}
			n := normalize.New(t)

			descriptor := strings.Join(args, " ")
			cmd.Println(cli.FormatTitle("Normalization"))
			cmd.Println(cli.FormatField("Descriptor", descriptor))
			cmd.Println(cli.FormatField("Key", n.Key(descriptor)))
			cmd.Println(cli.FormatField("Tokens", strings.Join(n.KeyTokens(descriptor), " ")))
			cmd.Println(cli.FormatField("Merchant name", n.MerchantName(descriptor)))
			return nil
		},
	}
}
