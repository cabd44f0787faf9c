package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sozercan/verdict/internal/config"
	"github.com/sozercan/verdict/internal/query"
	"github.com/sozercan/verdict/internal/verify"
	"github.com/sozercan/verdict/internal/view"
)

// version is set at build time via -ldflags.
var version = "dev"

type flags struct {
	endpoint string
	timeout  time.Duration
	noColor  bool
	raw      bool
	verbose  bool
}

var rootFlags flags

var rootCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Ask the verification API whether a claim is likely true",
	Long: "verdict sends claims to the verification API and prints its verdict\n" +
		"with a confidence score. Without a subcommand it reads one claim per line.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInteractive,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.endpoint, "endpoint", "", "verification endpoint (default from config, "+config.DefaultEndpoint+")")
	pf.DurationVar(&rootFlags.timeout, "timeout", 0, "request timeout (default from config)")
	pf.BoolVar(&rootFlags.noColor, "no-color", false, "disable coloured verdicts")
	pf.BoolVar(&rootFlags.raw, "raw", false, "expand the raw intel packet under each verdict")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	rootCmd.AddCommand(askCmd)
	rootCmd.Version = version
}

// newQueryClient builds the client from config plus flag overrides.
func newQueryClient(cmd *cobra.Command) (*query.Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if rootFlags.endpoint != "" {
		cfg.Verify.Endpoint = rootFlags.endpoint
	}
	if rootFlags.timeout > 0 {
		cfg.Verify.Timeout = rootFlags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if rootFlags.verbose {
		level = cfg.Log.SlogLevel()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	verifier, err := verify.NewClient(cfg.Verify.Endpoint, cfg.Verify.Timeout)
	if err != nil {
		return nil, err
	}

	term := view.NewTerminal(cmd.OutOrStdout(),
		view.WithColor(!cfg.Log.NoColor && !rootFlags.noColor),
		view.WithRawPacket(rootFlags.raw),
	)
	return query.New(verifier, term), nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	client, err := newQueryClient(cmd)
	if err != nil {
		return err
	}
	return client.SubmitLines(cmd.Context(), cmd.InOrStdin())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
