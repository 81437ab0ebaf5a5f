package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amp-labs/lvt/algorithm"
	"github.com/amp-labs/lvt/bench"
	"github.com/amp-labs/lvt/config"
	"github.com/amp-labs/lvt/fsutil"
	"github.com/amp-labs/lvt/input"
	"github.com/amp-labs/lvt/logger"
	"github.com/amp-labs/lvt/printer"
	"github.com/amp-labs/lvt/random"
	"github.com/amp-labs/lvt/strutil"
	"github.com/amp-labs/lvt/timer"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	topGrams = 5
	topFreq  = 3
)

var errInterrupted = errors.New("interrupted")

type flags struct {
	interactive bool
	envFile     string
	metrics     bool
	wordsDir    string
}

func parseFlags(args []string, out io.Writer) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("lvt", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.BoolVar(&f.interactive, "i", false, "ask for size, strategies and direction")
	fs.StringVar(&f.envFile, "env", ".env", "dotenv file to read, skipped when missing")
	fs.BoolVar(&f.metrics, "metrics", false, "print the collected duration metrics")
	fs.StringVar(&f.wordsDir, "words-dir", "", "take n-gram words from the .txt files in this directory instead of random words")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// run is main without the process exit. A non-nil env replaces the process environment.
func run(ctx context.Context, args []string, out io.Writer, env map[string]string) error {
	f, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	opts := []config.Option{config.WithEnvFiles(f.envFile)}
	if env != nil {
		opts = append(opts, config.WithEnvironment(env))
	}

	settings, err := config.LoadSettings(opts...)
	if err != nil {
		return err
	}

	logger.ConfigureLogging(ctx, "lvt", settings)

	strategies, err := settings.SortStrategies()
	if err != nil {
		return err
	}

	cfg := bench.Config{
		Strategies: strategies,
		Direction:  settings.Direction,
		Size:       settings.Size,
		Min:        settings.Min,
		Max:        settings.Max,
		Seed:       settings.Seed,
		Workers:    settings.Workers,
	}

	if f.interactive {
		if cfg, err = ask(input.New(), cfg); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	runner := bench.New(timer.NewMetrics(reg, nil), bench.WithProgress(func(done, total int64) {
		logger.Get(ctx).Debug("progress", "done", done, "total", total)
	}))

	report, err := runner.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return errInterrupted
	}

	sink := printer.NewWriterSink(out)

	if err := printReport(sink, report); err != nil {
		return err
	}

	if f.metrics {
		if err := printMetrics(sink, reg); err != nil {
			return err
		}
	}

	words := random.Words(settings.Words)
	if f.wordsDir != "" {
		if words, err = readWords(f.wordsDir); err != nil {
			return err
		}
	}

	return printAnalytics(sink, bench.Input(cfg), words, settings.NGram)
}

func readWords(dir string) ([]string, error) {
	files, err := fsutil.ListFiles(dir, fsutil.DefaultMask)
	if err != nil {
		return nil, err
	}

	var words []string

	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		text := strutil.ToLower(strutil.RemovePunct(string(data)))
		words = append(words, strings.Fields(text)...)
	}

	return words, nil
}

func ask(p *input.Prompter, cfg bench.Config) (bench.Config, error) {
	size, err := p.Uint("Input size", uint64(max(cfg.Size, 0))) //nolint:gosec
	if err != nil {
		return cfg, err
	}

	strategies, err := p.SelectStrategies("Strategies to race")
	if err != nil {
		return cfg, err
	}

	dir, err := p.SelectDirection("Order")
	if err != nil {
		return cfg, err
	}

	cfg.Size = int(size) //nolint:gosec
	cfg.Direction = dir

	if len(strategies) > 0 {
		cfg.Strategies = strategies
	}

	return cfg, nil
}

func printReport(sink printer.Sink, report *bench.Report) error {
	rows := make([][]string, 0, len(report.Results))

	for _, res := range report.Results {
		rows = append(rows, []string{
			res.Strategy.String(),
			res.Duration.Round(time.Microsecond).String(),
			strconv.FormatBool(res.Strategy.Stable()),
		})
	}

	if err := sink.WriteLine(fmt.Sprintf("run %s, %d elements", report.RunID, report.Size)); err != nil {
		return err
	}

	if err := printer.Table(sink, []string{"strategy", "duration", "stable"}, rows); err != nil {
		return err
	}

	return sink.WriteLine("digest " + report.Digest)
}

func printMetrics(sink printer.Sink, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var rows [][]string

	for _, mf := range families {
		if mf.GetName() != "lvt_operation_duration_seconds" {
			continue
		}

		for _, m := range mf.GetMetric() {
			op := ""

			for _, lp := range m.GetLabel() {
				if lp.GetName() == "operation" {
					op = lp.GetValue()
				}
			}

			h := m.GetHistogram()
			rows = append(rows, []string{
				op,
				strconv.FormatUint(h.GetSampleCount(), 10),
				strconv.FormatFloat(h.GetSampleSum(), 'g', 6, 64),
			})
		}
	}

	return printer.Table(sink, []string{"operation", "samples", "seconds"}, rows)
}

func printAnalytics(sink printer.Sink, data []int, words []string, n int) error {
	lines := []string{
		fmt.Sprintf("max subarray sum: %d", algorithm.MaxSubarraySum(data)),
		fmt.Sprintf("max product of 3: %d", algorithm.MaxProductOf3Elems(data)),
		"most frequent: " + printer.Join(algorithm.KMostFreqElem(data, topFreq), " "),
	}

	for _, line := range lines {
		if err := sink.WriteLine(line); err != nil {
			return err
		}
	}

	grams := strutil.NGramFrequencies(words, n)

	return printer.Pairs(sink, grams[:min(topGrams, len(grams))])
}
