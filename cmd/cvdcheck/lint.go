// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ghchinoy/cvdcheck/internal/checker"
	"github.com/ghchinoy/cvdcheck/internal/palette"
)

var watchPalette bool

// errLintFailed makes the command exit non-zero after the results are shown.
var errLintFailed = errors.New("one or more palette pairs failed")

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	if !watchPalette {
		return lintOnce(out, path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := lintOnce(out, path); err != nil {
		log.Printf("%v", err)
	}
	fmt.Fprintln(out, StyleMuted.Render("Watching "+path+" for changes (ctrl+c to stop)"))
	return palette.Watch(ctx, path, palette.DefaultWatchDebounce, func() error {
		fmt.Fprintln(out)
		return lintOnce(out, path)
	}, func(err error) {
		log.Printf("%v", err)
	})
}

// lintConfig is checkerConfig for palettes: --text does not apply, each
// pair decides for itself.
func lintConfig() (checker.Config, error) {
	cfg, err := checkerConfig()
	if err != nil {
		return cfg, err
	}
	cfg.SkipRules = splitList(skipTests)
	return cfg, nil
}

func lintOnce(out io.Writer, path string) error {
	p, err := palette.Load(path)
	if err != nil {
		return err
	}
	cfg, err := lintConfig()
	if err != nil {
		return err
	}
	results, lintErr := palette.Lint(p, cfg)

	if jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		writeLint(out, results)
	}
	if lintErr != nil {
		return lintErr
	}
	for _, r := range results {
		if r.Failed() {
			return errLintFailed
		}
	}
	return nil
}

// writeLint prints one status line per pair, and the failing filters of
// pairs that did not pass.
func writeLint(w io.Writer, results []palette.Result) {
	for _, r := range results {
		status := StylePass.Render("PASS")
		if r.Failed() {
			status = StyleFail.Render("FAIL")
		}
		hex := r.Report.Filters[0].Metrics.Colors
		fmt.Fprintf(w, "%s %s %s %s on %s %s\n", status, StyleID.Render(r.Pair.Name),
			swatch(hex[0]), r.Pair.Foreground,
			swatch(hex[1]), r.Pair.Background)
		if !r.Failed() {
			continue
		}
		width := nameWidth(r.Report.Filters)
		for _, f := range r.Report.Filters {
			if len(f.Failed()) > 0 {
				fmt.Fprint(w, renderFilter(f, width))
			}
		}
	}
}
