package main

import (
	"apiaccess/internal/config"
	"apiaccess/internal/link"
	"apiaccess/internal/logger"
	"apiaccess/internal/metrics"
	"apiaccess/internal/model"
	"apiaccess/internal/sources"

	"github.com/spf13/cobra"
)

var (
	importParams map[string]string
	importLinks  []string
	importFiles  []string
	importIn     string
	importOutput string
	importReport bool
)

var importCmd = &cobra.Command{
	Use:   "import [source_names...]",
	Short: "Turn share links into access methods",
	Long: `Run the configured sources, or specific ones by name, and append every new
share link as a custom access method. --link and --file add ad hoc sources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg.FilterSources(args)
		if len(args) == 0 && len(importLinks)+len(importFiles) > 0 {
			// Ad hoc input replaces the configured sources.
			cfg.Import.Sources = nil
		}
		for _, path := range importFiles {
			cfg.Import.Sources = append(cfg.Import.Sources, config.SourceConfig{
				Name:   path,
				Type:   "file",
				Params: map[string]interface{}{"path": path},
			})
		}

		if len(cfg.Import.Sources) == 0 && len(importLinks) == 0 {
			logger.Log.Warn("No sources matched.")
			return nil
		}

		raw := append([]string(nil), importLinks...)
		for _, sCfg := range cfg.Import.Sources {
			logger.Log.Infof("Running source: %s (%s)...", sCfg.Name, sCfg.Type)

			src, err := sources.Get(sCfg.Type)
			if err != nil {
				logger.Log.Warnf("Skipping: %v", err)
				continue
			}

			params := applyOverrides(sCfg.Params, importParams)
			if _, ok := params["timeout"]; !ok && sCfg.Type == "http" {
				params["timeout"] = cfg.HTTP.Timeout.String()
			}

			links, err := src.Collect(params)
			if err != nil {
				logger.Log.Errorf("Error running source: %v", err)
				continue
			}
			logger.Log.Infof("Found %d links", len(links))
			raw = append(raw, links...)
		}

		var settings model.Settings
		if importIn != "" {
			if settings, err = loadSettings(importIn); err != nil {
				return err
			}
		}

		report := metrics.New()
		appendLinks(&settings, raw, cfg.Import.Enabled, report)
		logger.Log.Infof("Imported %d new access methods", report.Imported())
		if importReport {
			if err := report.PrintReport(cmd.ErrOrStderr()); err != nil {
				return err
			}
		}

		return writeSettings(cmd.OutOrStdout(), importOutput, settings)
	},
}

// appendLinks parses raw share links and appends the methods not already
// present, each under a fresh id.
func appendLinks(settings *model.Settings, raw []string, enabled bool, report *metrics.Collector) {
	seen := make(map[model.AccessMethod]bool)
	for _, s := range settings.AccessMethods {
		seen[s.Method] = true
	}

	for _, r := range raw {
		p, err := link.Parse(r)
		if err != nil {
			logger.Log.Warnf("Dropped link: %v", err)
			report.RecordFailure(err)
			continue
		}
		if seen[p.Method] {
			logger.Log.Debugf("Duplicate %s", p.Method)
			report.RecordDuplicate()
			continue
		}
		seen[p.Method] = true

		name := p.Name
		if name == "" {
			name = p.Method.String()
		}
		settings.AccessMethods = append(settings.AccessMethods, model.AccessMethodSetting{
			ID:      model.NewAccessMethodID(),
			Name:    name,
			Enabled: enabled,
			Method:  p.Method,
		})
		report.RecordImported(p.Method.Kind())
	}
}

func init() {
	importCmd.Flags().StringToStringVarP(&importParams, "param", "p", nil, "Override source params (e.g. -p timeout=10s)")
	importCmd.Flags().StringSliceVar(&importLinks, "link", nil, "Share link to import (repeatable)")
	importCmd.Flags().StringSliceVar(&importFiles, "file", nil, "Text file to scan for share links (repeatable)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Existing settings document to append to")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Write the result to a file instead of stdout")
	importCmd.Flags().BoolVar(&importReport, "report", false, "Print an import summary to stderr")
	rootCmd.AddCommand(importCmd)
}
