// Package main provides the CLI entrypoint for the browse category service.
// It wires subcommands (serve, categories, icon), loads configuration, and initializes logging.
package main

import (
	"browse/internal/aggregator"
	"browse/internal/config"
	"browse/pkg/catalog/restapi"
	"browse/pkg/logger"
	"browse/pkg/tracing"
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getAggregator creates the catalog REST client from configuration and the
// aggregator reading from it. Metrics are recorded on mp when it is not nil.
func getAggregator(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) aggregator.Aggregator {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint: forcetypeassert
	transport.MaxIdleConnsPerHost = cfg.Upstream.MaxIdleConnsPerHost

	client, err := restapi.New(&http.Client{
		Timeout:   cfg.Upstream.Timeout,
		Transport: transport,
	}, restapi.Options{
		BaseURL:        cfg.Upstream.BaseURL,
		CategoriesPath: cfg.Upstream.CategoriesPath,
		ItemsPath:      cfg.Upstream.ItemsPath,
		UserAgent:      cfg.Upstream.UserAgent,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create catalog client", zap.Error(err))
	}

	opts := aggregator.NewOptions(cfg)
	opts.MeterProvider = mp
	agg, err := aggregator.New(client, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create aggregator", zap.Error(err))
	}

	return agg
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "browse",
		Short:        "Category views of the calculator catalog",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger", err)
	}

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Fatal(ctx, "could not setup tracing", zap.Error(err))
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		categoriesCommand(cfg),
		iconCommand(),
	)

	err = rootCmd.Execute()

	flushCtx, cancel := context.WithTimeout(ctx, cfg.GracefulShutdownTimeout)
	if tErr := shutdownTracing(flushCtx); tErr != nil {
		logger.Warn(ctx, "could not flush traces", zap.Error(tErr))
	}
	cancel()

	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
