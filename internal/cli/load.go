package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/leadintel/internal/loadgen"
	"github.com/okian/leadintel/pkg/logger"
)

func newLoadCmd(o *options) *cobra.Command {
	cfg := loadgen.Config{}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Drive a running server with generated contacts and verify history",
		Example: `  leadctl load --url http://localhost:9080 --contacts 200 --workers 8
  leadctl load --rps 20 --out contacts.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.seed != 0 {
				cfg.Seed = o.seed
			}
			level := "info"
			if o.verbose {
				level = "debug"
			}
			lv, _ := logger.ParseLevel(level)
			log := logger.New(cmd.ErrOrStderr(), logger.FormatText, lv).Named("leadctl")

			stats, err := loadgen.Run(cmd.Context(), cfg, log)
			if perr := printJSON(cmd.OutOrStdout(), stats); perr != nil && err == nil {
				err = perr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.BaseURL, "url", "http://localhost:9080", "Base URL of the server")
	cmd.Flags().IntVar(&cfg.Contacts, "contacts", 50, "Contacts to generate")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 4, "Concurrent submitters")
	cmd.Flags().Float64Var(&cfg.RPS, "rps", 0, "Request rate limit (0 is unlimited)")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "HTTP request timeout")
	cmd.Flags().StringVar(&cfg.OutputFile, "out", "", "Write the generated contacts to this file")
	return cmd
}
