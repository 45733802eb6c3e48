// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command spin spins the wheel from a terminal against a running API server
// and prints the shared tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/big12-wheel/spinclient"
	"github.com/danielhkuo/big12-wheel/wheel"
)

type options struct {
	url  string
	bias float64
	n    int
	seed uint64
	wait time.Duration
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("spin", flag.ContinueOnError)
	fs.StringVar(&opts.url, "url", "http://localhost:3318", "API base URL")
	fs.Float64Var(&opts.bias, "bias", wheel.DefaultBias, "Probability of landing on "+wheel.FavoredTeam)
	fs.IntVar(&opts.n, "n", 1, "Number of spins")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = random)")
	fs.DurationVar(&opts.wait, "wait", wheel.SpinDuration, "Animation time per spin")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.n < 0 {
		return options{}, fmt.Errorf("-n must not be negative")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("spin failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	w := wheel.Default()
	sel, err := wheel.NewSelector(w, wheel.FavoredTeam, opts.bias, rng)
	if err != nil {
		return err
	}

	spinner := spinclient.NewSpinner(spinclient.NewClient(opts.url, nil), sel, wheel.NewView(w), nil)
	spinner.SetWait(opts.wait)

	if err := spinner.Load(ctx); err != nil {
		fmt.Fprintln(out, "Could not load results, starting from an empty chart")
	}

	for i := 0; i < opts.n; i++ {
		team, err := spinner.Spin(ctx)
		if err != nil && team == "" {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintf(out, "Spin %s: %s\n", humanize.Comma(int64(i+1)), team)
	}

	printChart(out, spinner.View())
	return nil
}

func printChart(out io.Writer, v *wheel.View) {
	total := v.TotalSpins()
	fmt.Fprintf(out, "\nTotal spins: %s\n", humanize.Comma(int64(total)))

	for i, row := range v.ChartRows() {
		share := 0.0
		if total > 0 {
			share = float64(row.Count) / float64(total) * 100
		}
		bar := strings.Repeat("#", int(share/2))
		fmt.Fprintf(out, "%5s %-15s %8s %5.1f%% %s\n",
			humanize.Ordinal(i+1), row.Team, humanize.Comma(int64(row.Count)), share, bar)
	}
}
