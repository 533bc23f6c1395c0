// Package cli implements leadctl, a command line front end to the lead
// intelligence service for one-off runs against JSON contact files.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/okian/leadintel/internal/app"
	"github.com/okian/leadintel/internal/config"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/pkg/logger"
)

// Errors returned by leadctl commands.
var (
	ErrContactFile     = errors.New("read contact file")
	ErrEnrichmentFails = errors.New("enrichment failed")
)

var version = "dev"

// options holds the root flags shared by every subcommand.
type options struct {
	verbose bool
	seed    int64
	latency bool
	svcOpts []app.Option
}

// Option customizes the root command. Tests use it to inject service options.
type Option func(*options)

// WithServiceOptions appends options applied after configuration.
func WithServiceOptions(opts ...app.Option) Option {
	return func(o *options) { o.svcOpts = append(o.svcOpts, opts...) }
}

// NewRootCmd builds the leadctl command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	root := &cobra.Command{
		Use:           "leadctl",
		Short:         "Enrich contacts and draft outreach replies",
		Long:          "leadctl runs the lead intelligence engine locally and can load test a running server.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log at debug level to stderr")
	root.PersistentFlags().Int64Var(&o.seed, "seed", 0, "Random seed (0 uses the configured seed)")
	root.PersistentFlags().BoolVar(&o.latency, "simulate-latency", false, "Keep the simulated provider latency")

	root.AddCommand(newEnrichCmd(o), newRepliesCmd(o), newTemplatesCmd(o), newLoadCmd(o))
	return root
}

// Execute runs leadctl with the process arguments.
func Execute(ctx context.Context) int {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

// startService loads configuration and starts a service for one command.
func (o *options) startService(cmd *cobra.Command) (*app.Service, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !o.latency {
		cfg.ProviderLatencyMinMS, cfg.ProviderLatencyMaxMS = 0, 0
	}
	if o.seed != 0 {
		cfg.RandomSeed = o.seed
	}
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	lv, _ := logger.ParseLevel(level)
	log := logger.New(cmd.ErrOrStderr(), cfg.LogFormat, lv).Named("leadctl")

	svcOpts := append(app.FromConfig(cfg), app.WithLogger(log))
	svc := app.New(append(svcOpts, o.svcOpts...)...)
	if err := svc.Start(cmd.Context()); err != nil {
		return nil, err
	}
	return svc, nil
}

func readInput(in io.Reader, path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContactFile, err)
	}
	return data, nil
}

func readContact(in io.Reader, path string) (model.Contact, error) {
	var c model.Contact
	data, err := readInput(in, path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %s: %w", ErrContactFile, path, err)
	}
	return c, nil
}

// readContacts accepts one contact object or an array of them. batch
// reports which form was read.
func readContacts(in io.Reader, path string) (contacts []model.Contact, batch bool, err error) {
	data, err := readInput(in, path)
	if err != nil {
		return nil, false, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &contacts); err != nil {
			return nil, true, fmt.Errorf("%w: %s: %w", ErrContactFile, path, err)
		}
		return contacts, true, nil
	}
	var c model.Contact
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrContactFile, path, err)
	}
	return []model.Contact{c}, false, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
