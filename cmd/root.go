package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/datapio/buildstock/buildstock"
	"github.com/datapio/buildstock/config"
	"github.com/datapio/buildstock/nominatim"
)

var (
	cfgFile  string
	phase    string
	useProxy bool

	cfg      *config.Config
	logger   zerolog.Logger
	client   *buildstock.Client
	geocoder *nominatim.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "buildstock",
	Short: "Query and populate the building-stock data service",
	Long: `buildstock is a CLI for the building-stock data service. It queries
building records, region statistics and the NUTS hierarchy, reverse geocodes
coordinates, and submits attribute data to privileged endpoints.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&phase, "phase", "staging", "deployment phase to connect to")
	rootCmd.PersistentFlags().BoolVar(&useProxy, "proxy", false, "connect through the configured proxy")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	address, err := cfg.DataServiceAddress(phase, useProxy)
	if err != nil {
		return err
	}

	creds := buildstock.Credentials{
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
	}

	client, err = buildstock.NewClient(address, cfg.BasePath, creds, logger)
	if err != nil {
		return fmt.Errorf("failed to create data service client: %w", err)
	}

	geocoder, err = nominatim.NewClient(cfg.NominatimAddress(useProxy), logger)
	if err != nil {
		return fmt.Errorf("failed to create geocoding client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; only color when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
