// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	m "github.com/mkhts/rinexobs"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

type cmdOpt struct {
	obsFn  string
	cfg    *m.Config
	ts, te time.Time
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load and parse the observation file
	obs, err := readObs(args.obsFn, m.Options{Strict: args.cfg.Strict})
	if err != nil {
		return fmt.Errorf("failed to read observation file: %w", err)
	}

	if m.DBG_ >= 1 {
		m.PrintA("--- obs data (%s)---\n", filepath.Base(args.obsFn))
		fmt.Fprintln(os.Stderr, obs)
	}
	if obs.DupSats > 0 {
		m.PrintA("warning: %d duplicate satellite records within single epochs\n", obs.DupSats)
	}

	// Keep only the requested time window
	obs = windowEpochs(obs, args.ts, args.te)

	// Prepare output file
	out, err := prepareOutput(args.cfg.CSV.Output)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	// Emit the CSV rows
	if err := m.WriteCSV(out, obs, args.cfg.CSV.Header); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	// Print summary statistics
	if args.cfg.Summary {
		m.PrintA("%s", obs.Summarize())
	}

	return nil
}

// Open and parse the observation file
func readObs(fn string, opt m.Options) (*m.Obs, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", m.ErrSourceUnavailable, err)
	}
	defer f.Close()
	return m.ReadObsWith(f, opt)
}

// Keep the epochs within [ts, te]
func windowEpochs(obs *m.Obs, ts, te time.Time) *m.Obs {
	out := *obs
	out.Epochs = nil
	for _, ep := range obs.Epochs {
		t := ep.GTime()
		if t.Before(ts, true) || t.After(te, true) {
			continue
		}
		out.Epochs = append(out.Epochs, ep)
	}
	return &out
}

// Prepare output file
func prepareOutput(fn string) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(fn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	f, err := os.Create(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

type nopCloser struct {
	io.Writer
}

func (*nopCloser) Close() error { return nil }

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] file.obs

[Options]
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	var cfgFn, outFn string
	var noHeader, strict, summary bool
	var dbg int
	flag.StringVar(&cfgFn, "c", "", "YAML configuration file. Command line options override it.")
	flag.StringVar(&outFn, "o", "", "Output csv file path. If not specified, output to stdout.")
	flag.BoolVar(&noHeader, "nh", false, "Do not output the csv header row.")
	flag.BoolVar(&strict, "strict", false, "Fail on malformed epoch headers and duplicate satellites instead of dropping them.")
	flag.BoolVar(&summary, "sum", false, "Print summary statistics to stderr.")
	var ts_, te_ m.TimeStr
	flag.TextVar(&ts_, "ts", m.NewTimeStr(time.Time{}), "Start epoch specification. Enclose in quotes like -ts \"2023/01/01 00:00:00\"")
	flag.TextVar(&te_, "te", m.NewTimeStr(time.Now().UTC()), "End epoch specification. Enclose in quotes like -te \"2023/01/02 00:00:00\". This epoch is also included.")
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display)")
	flag.Parse()

	if flag.NArg() != 1 {
		return a, fmt.Errorf("exactly one observation file must be given")
	}
	a.obsFn = flag.Arg(0)

	a.cfg = m.DefaultConfig()
	if cfgFn != "" {
		if a.cfg, err = m.LoadConfig(cfgFn); err != nil {
			return a, err
		}
	}

	// Flags win over the configuration file
	if outFn != "" {
		a.cfg.CSV.Output = outFn
	}
	if noHeader {
		a.cfg.CSV.Header = false
	}
	if strict {
		a.cfg.Strict = true
	}
	if summary {
		a.cfg.Summary = true
	}
	if dbg > 0 {
		a.cfg.Debug = dbg
	}
	m.DBG_ = a.cfg.Debug

	a.ts = time.Time(ts_)
	a.te = time.Time(te_)

	return a, nil
}
