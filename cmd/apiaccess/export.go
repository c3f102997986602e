package main

import (
	"fmt"

	"apiaccess/internal/config"
	"apiaccess/internal/exporters"
	"apiaccess/internal/logger"

	"github.com/spf13/cobra"
)

var (
	exportParams map[string]string
	exportIn     string
)

var exportCmd = &cobra.Command{
	Use:   "export [exporter_names...]",
	Short: "Render a settings document through the configured exporters",
	Long:  `Run all exporters or specific ones. Use --param to override exporter configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg.FilterExporters(args)

		if len(cfg.Export.Exporters) == 0 {
			logger.Log.Warn("No exporters matched.")
			return nil
		}

		settings, err := loadSettings(exportIn)
		if err != nil {
			return err
		}

		failed := 0
		for _, eCfg := range cfg.Export.Exporters {
			logger.Log.Infof("Running exporter: %s (%s)...", eCfg.Name, eCfg.Type)

			plugin, err := exporters.Get(eCfg.Type)
			if err != nil {
				logger.Log.Warnf("Plugin not found: %v", err)
				continue
			}

			params := applyOverrides(eCfg.Params, exportParams)
			if _, ok := params["tag_prefix"]; !ok {
				params["tag_prefix"] = cfg.Xray.TagPrefix
			}

			payload, err := plugin.Export(settings, params)
			if err == nil {
				err = exporters.Emit(cmd.OutOrStdout(), payload, params)
			}
			if err != nil {
				logger.Log.Errorf("Export failed: %v", err)
				failed++
				continue
			}
			logger.Log.Info("Exported successfully.")
		}

		if failed > 0 {
			return fmt.Errorf("%d exporters failed", failed)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringToStringVarP(&exportParams, "param", "p", nil, "Override exporter params (e.g. -p output=sub.txt)")
	exportCmd.Flags().StringVar(&exportIn, "in", "", "Settings document to export")
	_ = exportCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd)
}
