package main

import (
	"fmt"

	"apiaccess/internal/logger"

	"github.com/spf13/cobra"
)

var validateUpdate bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check settings or update documents",
	Long:  `Decode each document and report the first invalid argument found. Use --update for update documents.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if validateUpdate {
				u, err := loadUpdate(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK %s: update of %s to %s\n", path, u.ID, u.Method.Kind())
				continue
			}

			settings, err := loadSettings(path)
			if err != nil {
				return err
			}
			logger.Log.Debugf("Decoded %d access methods from %s", len(settings.AccessMethods), path)
			fmt.Fprintf(cmd.OutOrStdout(), "OK %s: %d access methods\n", path, len(settings.AccessMethods))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateUpdate, "update", false, "Treat documents as access method updates")
	rootCmd.AddCommand(validateCmd)
}
