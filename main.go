// arrayseq replays configured workloads against the sequence containers
// in this module and reports how much space each one used.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"zombiezen.com/go/ini"
	"zombiezen.com/go/log"
)

const programName = "arrayseq"

func main() {
	flagSet := flag.NewFlagSet(programName, flag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintf(flagSet.Output(), "usage: %s [options] CONFIG [...]\n", programName)
		flagSet.PrintDefaults()
	}
	var cfg configuration
	flagSet.IntVar(&cfg.parallelism, "parallel", 0, "maximum `number` of workloads to run at once (default from config or GOMAXPROCS)")
	debug := flagSet.Bool("debug", false, "show debugging output")

	const exitUsage = 64
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		// Includes flag.ErrHelp: -help is not a successful run.
		os.Exit(exitUsage)
	}

	const baseLogFlags = log.ShowDate | log.ShowTime
	if *debug {
		log.SetDefault(&log.LevelFilter{
			Min:    log.Debug,
			Output: log.New(os.Stderr, "", baseLogFlags|log.ShowLevel, nil),
		})
	} else {
		log.SetDefault(&log.LevelFilter{
			Min:    log.Info,
			Output: log.New(os.Stderr, "", baseLogFlags, nil),
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), interruptSignals...)
	if flagSet.NArg() == 0 {
		log.Errorf(ctx, "No configuration files given")
		flagSet.PrintDefaults()
		os.Exit(exitUsage)
	}
	if cfg.parallelism < 0 {
		log.Errorf(ctx, "-parallel must not be negative")
		os.Exit(exitUsage)
	}
	iniFiles, err := ini.ParseFiles(nil, flagSet.Args()...)
	if err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
	if err := cfg.fill(iniFiles); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}

	err = run(ctx, os.Stdout, &cfg)
	cancel()
	if err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, cfg *configuration) error {
	if len(cfg.workloads) == 0 {
		return fmt.Errorf("no workloads in configuration")
	}
	parallelism := cfg.parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	log.Debugf(ctx, "Running %d workloads, %d at a time", len(cfg.workloads), parallelism)

	names := slices.Sorted(maps.Keys(cfg.workloads))
	results := make([]*result, len(names))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(parallelism)
	for i, name := range names {
		w := cfg.workloads[name]
		grp.Go(func() error {
			log.Debugf(grpCtx, "Starting workload %s (%s, %d ops)", name, w.structure, w.ops)
			r, err := runWorkload(grpCtx, w)
			if err != nil {
				return err
			}
			log.Infof(grpCtx, "Workload %s passed: peak capacity %d, peak waste %d", name, r.peakCap, r.peakWaste)
			results[i] = r
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	return writeReport(out, results)
}
