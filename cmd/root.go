// cmd/root.go
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abhishek-pokhrel/DNSProbe/internal/core"
	"github.com/abhishek-pokhrel/DNSProbe/internal/core/logger"
	"github.com/abhishek-pokhrel/DNSProbe/internal/output"
	"github.com/abhishek-pokhrel/DNSProbe/internal/scan"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	version      = "1.0.0" // Define tool version here
	configPath   string
	nameserver   string
	recordTypes  []string
	timeout      time.Duration
	outputPath   string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dnsprobe [domain]",
	Short: "DNSProbe: concurrent DNS record lookups for a target domain.",
	Long: `DNSProbe scans a single target domain for a configurable set of DNS record
types. Every record type is queried concurrently against the configured
nameserver, and the resolved records are aggregated into one table with
per-query timings. Failed lookups are logged and skipped; they never abort
the rest of the scan.`,
	Example: `  dnsprobe example.com
  dnsprobe example.com --nameserver 1.1.1.1 --types A,MX
  dnsprobe example.com -f json -o records.json
  dnsprobe example.com --config config.yaml -v`,
	Args: cobra.ExactArgs(1), // Requires exactly one argument (domain)
	RunE: runScan,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	domain := args[0]

	cfg := core.DefaultConfig()
	if configPath != "" {
		loaded, err := core.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("nameserver") {
		cfg.DNSServer = nameserver
	}
	if cmd.Flags().Changed("types") {
		cfg.RecordTypes = recordTypes
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = int(timeout.Seconds())
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logOut := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		defer f.Close()
		logOut = io.MultiWriter(os.Stdout, f)
	}
	log := logger.New(cfg.LogLevel, logOut)

	printBanner()
	color.Cyan("🔎 Scanning DNS records for %s via %s...", domain, cfg.DNSServer)

	client := scan.NewClient(cfg.DNSServer, time.Duration(cfg.TimeoutSeconds)*time.Second)
	scanner := scan.NewScanner(client, cfg.RecordTypes, log)

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = fmt.Sprintf(" Querying %d record types...", len(cfg.RecordTypes))
	spin.Start()
	report := scanner.Scan(domain)
	spin.Stop()

	if len(report.Rows) == 0 {
		color.Yellow("⚠️  No DNS records found for %s.", domain)
	} else {
		color.Green("🎯 Found %d DNS records for %s!", len(report.Rows), domain)
	}
	if report.Failures > 0 {
		color.Yellow("⚠️  %d record types produced no results (see log).", report.Failures)
	}

	if outputPath != "" {
		formatted, err := output.FormatReport(report, domain, outputFormat)
		if err != nil {
			return fmt.Errorf("output formatting failed: %w", err)
		}
		if err := output.WriteOutput(outputPath, formatted); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		color.Cyan("📄 Results saved to %s", outputPath)
		return nil
	}
	if outputFormat != "console" {
		formatted, err := output.FormatReport(report, domain, outputFormat)
		if err != nil {
			return fmt.Errorf("output formatting failed: %w", err)
		}
		fmt.Println(formatted)
		return nil
	}
	output.RenderTable(os.Stdout, report)
	return nil
}

func printBanner() {
	banner := `
 ____  _   _ ____  ____            _
|  _ \| \ | / ___||  _ \ _ __ ___ | |__   ___
| | | |  \| \___ \| |_) | '__/ _ \| '_ \ / _ \
| |_| | |\  |___) |  __/| | | (_) | |_) |  __/
|____/|_| \_|____/|_|   |_|  \___/|_.__/ \___|
`
	color.Cyan(banner)
	color.Magenta("DNSProbe v%s - Concurrent DNS recon for a single target!", version)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML or JSON)")
	rootCmd.Flags().StringVarP(&nameserver, "nameserver", "n", core.DefaultDNSServer, "Nameserver to query (IP or host, port 53 assumed)")
	rootCmd.Flags().StringSliceVarP(&recordTypes, "types", "t", core.DefaultRecordTypes, "Record types to scan (comma-separated)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "w", core.DefaultTimeoutSeconds*time.Second, "Timeout per DNS query (e.g. 2s, 500ms)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file to save results.")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "Output format: console, json, txt, csv.")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("DNSProbe {{.Version}}\n")
}
