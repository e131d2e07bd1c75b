// Package checks runs named self-checks against the golinq package and reports pass/fail results.
package checks

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/slices"
)

// CheckFunc performs a single check. It returns nil on success.
type CheckFunc func() error

type check struct {
	suite string
	name  string
	fn    CheckFunc
}

// Registry holds named checks grouped into suites, in registration order.
type Registry struct {
	checks []check
	suites []string
}

// Options controls which checks Run executes.
type Options struct {
	// Suites restricts the run to the named suites. All suites run if it is empty.
	Suites []string

	// FailFast stops the run at the first failing check.
	FailFast bool
}

// Result is the outcome of a single check.
type Result struct {
	Suite string
	Name  string

	// Index is the 0-based position of the check within its suite.
	Index int

	// Err is nil if the check passed.
	Err error
}

// Report holds the results of a run, in execution order.
type Report struct {
	Results []Result
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers check fn under name in suite.
func (r *Registry) Add(suite string, name string, fn CheckFunc) {
	if !slices.Contains(r.suites, suite) {
		r.suites = append(r.suites, suite)
	}

	r.checks = append(r.checks, check{
		suite: suite,
		name:  name,
		fn:    fn,
	})
}

// Suites returns the names of all registered suites, in registration order.
func (r *Registry) Suites() []string {
	return slices.Clone(r.suites)
}

// Run executes the registered checks selected by opts and logs each result to log.
// A panicking check is reported as failed.
func (r *Registry) Run(log *slog.Logger, opts Options) Report {
	report := Report{}
	indexes := map[string]int{}

	for _, c := range r.checks {
		if len(opts.Suites) > 0 && !slices.Contains(opts.Suites, c.suite) {
			continue
		}

		index := indexes[c.suite]
		indexes[c.suite]++

		if index == 0 {
			log.Info(c.suite)
		}

		result := Result{
			Suite: c.suite,
			Name:  c.name,
			Index: index,
			Err:   runCheck(c.fn),
		}

		report.Results = append(report.Results, result)

		if result.Err != nil {
			log.Error(fmt.Sprintf("[%d] %s: failed", index, c.name), "suite", c.suite, "error", result.Err)

			if opts.FailFast {
				break
			}

			continue
		}

		log.Info(fmt.Sprintf("[%d] %s: passed", index, c.name), "suite", c.suite)
	}

	return report
}

// Failed returns the number of failed checks.
func (r Report) Failed() int {
	failed := 0

	for _, result := range r.Results {
		if result.Err != nil {
			failed++
		}
	}

	return failed
}

// Passed returns the number of passed checks.
func (r Report) Passed() int {
	return len(r.Results) - r.Failed()
}

func runCheck(fn CheckFunc) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return fn()
}
