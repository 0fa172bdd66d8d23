package main

import (
	"errors"
	"time"

	"github.com/rdkcentral/rpc-contract-tests/config"
	"github.com/rdkcentral/rpc-contract-tests/framework"
	"github.com/rdkcentral/rpc-contract-tests/report"
	"github.com/rdkcentral/rpc-contract-tests/servicedef"
	"github.com/rdkcentral/rpc-contract-tests/transport"

	"github.com/spf13/pflag"
)

type commandParams struct {
	configPath string
	serviceURL string
	transport  string
	curlPath   string
	timeout    time.Duration
	compare    string
	csvPath    string
	xlsxPath   string
	wait       time.Duration
	logLevel   string
	logFile    string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool

	cases []config.CaseConfig
}

func (c *commandParams) bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML file with harness settings and extra test cases")
	fs.StringVar(&c.serviceURL, "url", servicedef.DefaultURL, "JSON-RPC endpoint of the service under test")
	fs.StringVar(&c.transport, "transport", config.TransportCurl, `how requests are sent: "curl" or "http"`)
	fs.StringVar(&c.curlPath, "curl", "curl", "path to the curl binary")
	fs.DurationVar(&c.timeout, "timeout", transport.DefaultTimeout, "timeout for each request")
	fs.StringVar(&c.compare, "compare", config.CompareExact, `response comparison: "exact" or "json"`)
	fs.StringVar(&c.csvPath, "csv", report.DefaultCSVPath, "CSV file that results are appended to")
	fs.StringVar(&c.xlsxPath, "xlsx", "", "also write an xlsx summary of this run to this file")
	fs.DurationVar(&c.wait, "wait", 0, "wait up to this long for the service to answer before running")
	fs.StringVar(&c.logLevel, "log-level", "info", "diagnostic log level (debug, info, warn, error)")
	fs.StringVar(&c.logFile, "log-file", "", "also write diagnostic logs to this file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
}

// applyConfig fills in settings from the config file. Flags given on the command line win.
func (c *commandParams) applyConfig(cfg *config.Config, fs *pflag.FlagSet) {
	setString := func(flag string, target *string, value string) {
		if value != "" && !fs.Changed(flag) {
			*target = value
		}
	}
	setDuration := func(flag string, target *time.Duration, value config.Duration) {
		if value != 0 && !fs.Changed(flag) {
			*target = time.Duration(value)
		}
	}
	setString("url", &c.serviceURL, cfg.URL)
	setString("transport", &c.transport, cfg.Transport)
	setString("curl", &c.curlPath, cfg.CurlPath)
	setString("compare", &c.compare, cfg.Compare)
	setString("csv", &c.csvPath, cfg.CSVPath)
	setString("xlsx", &c.xlsxPath, cfg.XLSXPath)
	setString("log-level", &c.logLevel, cfg.LogLevel)
	setString("log-file", &c.logFile, cfg.LogFile)
	setDuration("timeout", &c.timeout, cfg.Timeout)
	setDuration("wait", &c.wait, cfg.Wait)
	c.cases = cfg.Cases
}

func (c *commandParams) validate() error {
	if c.serviceURL == "" {
		return errors.New("--url must not be empty")
	}
	return config.Config{
		Transport: c.transport,
		Compare:   c.compare,
		Timeout:   config.Duration(c.timeout),
	}.Validate()
}
