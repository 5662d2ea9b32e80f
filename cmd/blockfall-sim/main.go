package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	opts := config.Default()
	opts.TickInterval = 50 * time.Millisecond
	opts.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the simulation should run for.")
	frameStep := flag.Duration("step", time.Second/60, "Simulated time advanced per frame.")
	pressRate := flag.Int("press-rate", 30, "Percent of frames on which the autoplayer presses a key.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if *frameStep <= 0 {
		log.Fatalf("Invalid options: step must be positive, got %s", *frameStep)
	}

	logFile, err := opts.OpenLog()
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logFile.Close()

	seed := opts.RandSeed(time.Now())
	log.Printf("Starting blockfall simulation (seed %d)...", seed)

	report := &Report{
		Duration:       *duration,
		Seed:           seed,
		TickInterval:   opts.TickInterval,
		FrameStep:      *frameStep,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Timings{
			Samples: make([]time.Duration, 0, 1024),
		},
	}

	engine := tetris.NewEngine(tetris.NewRand(seed))
	engine.Subscribe(report.Game.tally())
	if opts.Verbose {
		engine.Subscribe(func(prev, next tetris.State, out tetris.Outcome) {
			log.Printf("%s -> %s: %s (score %d)", prev.Phase, next.Phase, out.Events, next.Score)
		})
	}

	gravity := loop.NewGravitySystem(opts.TickInterval)
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&AutoplaySystem{Rand: tetris.NewRand(seed + 1), PressRate: *pressRate})
	scheduler.Register(gravity)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := frameStep.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.TotalUpdates) * *frameStep
	report.Game.Ticks = gravity.Ticks()
	report.Scheduler = scheduler.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
