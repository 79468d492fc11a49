package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"vitality-ca/internal/monitoring"
	_ "vitality-ca/internal/patterns"
	"vitality-ca/internal/sim"
	"vitality-ca/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	configPath := flag.String("config", "", "JSON configuration file for the base engine")
	pattern := flag.String("pattern", "random", "seed pattern")
	plotPath := flag.String("plot", "", "write a population chart to this path (.png, .svg or .pdf)")
	quiet := flag.Bool("quiet", true, "silence engine logging")
	flag.Parse()

	base := sim.DefaultConfig()
	if *configPath != "" {
		loaded, err := sim.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		base = loaded
	}
	base.Pattern = *pattern
	if err := base.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *quiet {
		monitoring.SetLogger(nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenarios := sweep.Scenarios()
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, pattern %s)\n", len(scenarios), *workers, *steps, base.Pattern)

	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{Base: base, Steps: *steps, Workers: *workers}, scenarios)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range results {
		if res.Err != nil {
			fmt.Printf("%2d) %-40s error: %v\n", i+1, res.Scenario, res.Err)
			continue
		}
		fmt.Printf("%2d) %-40s alive=%d cells=%d mean=%.1f sd=%.1f peak=%d@%d vitality=%.2f run=%s\n",
			i+1, res.Scenario, res.Final.Alive, res.Final.Cells, res.MeanAlive, res.StdDevAlive,
			res.PeakAlive, res.PeakTick, res.Final.TotalVitality, res.RunID)
	}

	if *plotPath != "" {
		if err := sweep.WritePlot(*plotPath, results); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("\nWrote %s\n", *plotPath)
	}
}
