package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/term"
	"github.com/plus3/blockfall/tetris"
)

// frameInterval is how often the scheduler runs; gravity keeps its own period.
const frameInterval = 16 * time.Millisecond

func main() {
	opts := config.Default()
	opts.LogPath = config.DefaultLogPath()
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	logFile, err := opts.OpenLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	seed := opts.RandSeed(time.Now())
	log.Printf("Starting blockfall-term (seed %d, tick %s)", seed, opts.TickInterval)

	engine := tetris.NewEngine(tetris.NewRand(seed))
	if opts.Verbose {
		engine.Subscribe(func(prev, next tetris.State, out tetris.Outcome) {
			log.Printf("%s -> %s: %s (score %d)", prev.Phase, next.Phase, out.Events, next.Score)
		})
	}

	if opts.Sound {
		player := sound.NewPlayer(opts.Volume)
		if err := player.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			engine.Subscribe(player.Listener())
		}
	}

	queue := input.NewQueue(0)
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.InputSystem{Queue: queue})
	scheduler.Register(loop.NewGravitySystem(opts.TickInterval))
	scheduler.Register(&term.RenderSystem{Renderer: term.NewRenderer(screen)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		scheduler.Run(ctx, frameInterval)
	}()

	keys := term.DefaultKeys()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if keys.Handle(ev, queue) {
				cancel()
			}
		case *tcell.EventResize:
			screen.Sync()
		}

		if ctx.Err() != nil {
			break
		}
	}

	cancel()
	<-done

	stats := scheduler.Stats()
	log.Printf("Exited after %d frames, %d actions, %d dropped inputs", stats.Frames, stats.Actions, queue.Dropped())
	return nil
}
