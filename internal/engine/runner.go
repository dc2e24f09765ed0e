package engine

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/jeduden/lintcoach/internal/config"
	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/log"
)

// Runner drives the pipeline up to rendering: for each report it reads
// the content, decodes it for Tool, drops results whose file matches an
// ignore pattern, and collects the rest in input order.
type Runner struct {
	Tool   lint.Tool
	Config *config.Config
	Log    *log.Logger
}

// Result holds the output of a run.
type Result struct {
	Results []lint.FileResult
	Errors  []error
}

// Err joins every collected error, or returns nil when there are none.
func (r *Result) Err() error {
	var merr *multierror.Error
	for _, err := range r.Errors {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}

// Problems returns the total number of errors and warnings reported.
func (r *Result) Problems() int {
	n := 0
	for _, fr := range r.Results {
		n += fr.ErrorCount + fr.WarningCount
	}
	return n
}

// Run decodes the reports at the given paths.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}
	ignore := r.ignore()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}
		r.decode(res, ignore, path, data)
	}
	return res
}

// RunSource decodes a single report held in memory, such as stdin.
func (r *Runner) RunSource(name string, data []byte) *Result {
	res := &Result{}
	r.decode(res, r.ignore(), name, data)
	return res
}

func (r *Runner) decode(res *Result, ignore *ignoreMatcher, name string, data []byte) {
	results, err := r.Tool.Decode(bytes.NewReader(data))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("%s: %w", name, err))
		return
	}
	r.Log.Printf("report %s: %d results", name, len(results))

	for _, fr := range results {
		if ignore.Match(fr.FilePath) {
			r.Log.Printf("ignored %s", fr.FilePath)
			continue
		}
		res.Results = append(res.Results, fr)
	}
}

func (r *Runner) ignore() *ignoreMatcher {
	if r.Config == nil {
		return &ignoreMatcher{}
	}
	return compileIgnore(r.Config.Ignore, r.Log)
}
