package main

import (
	"apiaccess/internal/logger"

	"github.com/spf13/cobra"
)

var updateOutput string

var updateCmd = &cobra.Command{
	Use:   "update <settings.yaml> <update.yaml>",
	Short: "Replace the method of one access method",
	Long:  `Apply an update document to a settings document and write the result. Name and enabled flag are kept.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(args[0])
		if err != nil {
			return err
		}
		u, err := loadUpdate(args[1])
		if err != nil {
			return err
		}

		updated, err := settings.Apply(u)
		if err != nil {
			return err
		}
		logger.Log.Infof("Updated %s to %s", u.ID, u.Method)

		return writeSettings(cmd.OutOrStdout(), updateOutput, updated)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateOutput, "output", "o", "", "Write the result to a file instead of stdout")
	rootCmd.AddCommand(updateCmd)
}
