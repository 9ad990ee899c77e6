package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/granabr/descritor/internal/cli"
	"github.com/granabr/descritor/internal/fingerprint"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <descriptor>",
		Short: "Derive the merchant fingerprint for a raw descriptor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}
			gen := fingerprint.New(t, fingerprint.DefaultMatchPolicy())

			descriptor := strings.Join(args, " ")
			fp := gen.Generate(descriptor)

			cmd.Println(cli.FormatTitle("Fingerprint"))
			cmd.Println(cli.FormatField("Descriptor", descriptor))
			cmd.Println(cli.FormatField("Strong", fp.Strong))
			cmd.Println(cli.FormatField("Weak", fp.Weak))
			cmd.Println(cli.FormatField("Normalized", fp.NormalizedDescriptor))
			cmd.Println(cli.FormatField("Merchant canon", fp.MerchantCanon))
			return nil
		},
	}
}
