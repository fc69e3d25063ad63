package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ethiocal/core/internal/application/services"
	"github.com/ethiocal/core/internal/infrastructure/config"
	"github.com/ethiocal/core/internal/infrastructure/logger"
	"github.com/ethiocal/core/internal/infrastructure/metrics"
	"github.com/ethiocal/core/internal/infrastructure/server"
	"github.com/ethiocal/core/internal/ports"
)

// Build information, set with -ldflags at release time
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "development"
)

// NewRootCommand assembles the ethiocal command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ethiocal",
		Short:         "Ethiopian calendar conversion service",
		Long:          `ethiocal converts Gregorian dates to the Ethiopian calendar, over HTTP or from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewTodayCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion API server",
		Long:  "Start the HTTP API serving /convert and /today",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

// NewConvertCommand creates the convert command
func NewConvertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "convert YYYY-MM-DD",
		Short:   "Convert a Gregorian date",
		Example: "  ethiocal convert 2023-09-11",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCLIService(time.UTC.String())
			if err != nil {
				return err
			}

			resp, err := svc.Convert(cmd.Context(), ports.ConvertRequest{Date: args[0]})
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, output)
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

// NewTodayCommand creates the today command
func NewTodayCommand() *cobra.Command {
	var tz, output string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's Ethiopian date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCLIService(tz)
			if err != nil {
				return err
			}

			resp, err := svc.Today(cmd.Context())
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, output)
		},
	}

	cmd.Flags().StringVar(&tz, "timezone", "Local", "Time zone used to resolve today's date")
	addOutputFlag(cmd, &output)
	return cmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ethiocal version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ethiocal v%s\n", Version)
			fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "text", "Output format (text, json)")
}

func newCLIService(tz string) (*services.CalendarService, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return services.NewCalendarService(metrics.New(prometheus.NewRegistry()), loc, logger.NewNop()), nil
}

func printResponse(w io.Writer, resp *ports.ConversionResponse, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(resp)
	case "text":
		_, err := fmt.Fprintf(w, "%s\n%s\n", resp.Numeric, resp.Verbose)
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Errorw("Failed to initialize server", "error", err)
		return err
	}

	appLogger.Infow("Starting ethiocal API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"timezone", cfg.Calendar.Timezone,
	)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.GetAddr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Errorw("Server failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	appLogger.Info("Server stopped")
	return nil
}
