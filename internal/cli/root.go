package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/deadlyengineer/linq-with-go/internal/checks"
	"github.com/lmittmann/tint"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

var errChecksFailed = errors.New("checks failed")

func Run() ExitCode {
	if err := NewRootCmd().Execute(); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

func NewRootCmd() *cobra.Command {
	var (
		verbose  bool
		suites   []string
		failFast bool
		quiet    bool
	)

	rootCmd := &cobra.Command{
		Use:           "linqcheck",
		Short:         "Run the golinq self-check suites and print a summary.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := checks.NewRegistry()
			checks.RegisterAll(registry)

			var logOut io.Writer = os.Stdout
			if quiet {
				logOut = io.Discard
			}
			log := newLogger(logOut, verbose)

			for _, suite := range suites {
				if !slices.Contains(registry.Suites(), suite) {
					return fmt.Errorf("unknown suite %q", suite)
				}
			}

			log.Debug("running checks", "suites", suites, "failFast", failFast)

			report := registry.Run(log, checks.Options{
				Suites:   suites,
				FailFast: failFast,
			})

			renderReport(cmd.OutOrStdout(), report)

			if report.Failed() > 0 {
				log.Error("checks failed", "failed", report.Failed(), "passed", report.Passed())
				return errChecksFailed
			}

			log.Info("all checks passed", "passed", report.Passed())

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary table")
	rootCmd.Flags().StringSliceVarP(&suites, "suite", "s", nil, "run only the named suites (default: all)")
	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failing check")

	return rootCmd
}

func renderReport(w io.Writer, report checks.Report) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetRowLine(true)
	table.SetHeader([]string{"Suite", "#", "Check", "Result"})

	for _, result := range report.Results {
		status := "passed"
		if result.Err != nil {
			status = "failed (" + result.Err.Error() + ")"
		}

		table.Append([]string{result.Suite, strconv.Itoa(result.Index), result.Name, status})
	}

	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d passed, %d failed", report.Passed(), report.Failed())})
	table.Render()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
