package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/rdkcentral/rpc-contract-tests/config"
	"github.com/rdkcentral/rpc-contract-tests/framework"
	"github.com/rdkcentral/rpc-contract-tests/report"
	"github.com/rdkcentral/rpc-contract-tests/rpctests"
	"github.com/rdkcentral/rpc-contract-tests/transport"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errTestsFailed = errors.New("one or more tests failed")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:           "rpc-contract-tests",
		Short:         "Run JSON-RPC contract tests against a set-top-box service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.configPath != "" {
				cfg, err := config.Load(params.configPath)
				if err != nil {
					return err
				}
				params.applyConfig(cfg, cmd.Flags())
			}
			if err := params.validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, params)
		},
	}
	params.bind(cmd.Flags())
	return cmd
}

func run(ctx context.Context, params commandParams) error {
	logger, err := newLogger(params.logLevel, params.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	compare, err := rpctests.ComparisonByName(params.compare)
	if err != nil {
		return err
	}
	cases, err := rpctests.CasesFromConfig(params.cases)
	if err != nil {
		return err
	}

	var invoker transport.Invoker
	switch params.transport {
	case config.TransportHTTP:
		invoker = transport.NewHTTPInvoker(http.DefaultClient, params.timeout, logger)
	default:
		invoker = transport.NewCurlInvoker(params.curlPath, params.timeout, logger)
	}

	if params.wait > 0 {
		debugLogger := serviceDebugLogger(logger, params.debugAll)
		if err := framework.AwaitService(params.serviceURL, params.wait, os.Stdout, debugLogger); err != nil {
			return fmt.Errorf("test service error: %w", err)
		}
	}

	logger.Info("starting test run",
		zap.String("url", params.serviceURL),
		zap.String("transport", params.transport),
		zap.String("compare", params.compare),
	)

	rep := report.New(params.csvPath)
	logger.Info("appending results", zap.String("csv", rep.CSVPath()))

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Output:               os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := rpctests.RunTestSuite(ctx, rpctests.SuiteParams{
		Invoker: invoker,
		Report:  rep,
		Compare: compare,
		URL:     params.serviceURL,
		Output:  os.Stdout,
		Cases:   cases,
	}, params.filters.AsFilter, testLogger)

	fmt.Println()
	rep.PrintSummary(os.Stdout)
	framework.PrintResults(os.Stdout, results)

	if params.xlsxPath != "" {
		if err := rep.ExportWorkbook(params.xlsxPath); err != nil {
			return err
		}
		logger.Info("wrote workbook", zap.String("path", params.xlsxPath))
	}

	if !results.OK() {
		return errTestsFailed
	}
	return nil
}

func newLogger(level, logFile string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}
	return cfg.Build()
}

// serviceDebugLogger reports service polling attempts at debug level, only under --debug-all.
func serviceDebugLogger(logger *zap.Logger, debugAll bool) framework.Logger {
	if !debugAll {
		return framework.NullLogger()
	}
	return framework.LoggerWithPrefix(framework.ZapLogger(logger), "[service] ")
}
