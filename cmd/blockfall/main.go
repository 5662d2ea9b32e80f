package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	opts := config.Default()
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	logFile, err := opts.OpenLog()
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logFile.Close()

	seed := opts.RandSeed(time.Now())
	log.Printf("Starting blockfall (seed %d, tick %s)", seed, opts.TickInterval)

	engine := tetris.NewEngine(tetris.NewRand(seed))
	if opts.Verbose {
		engine.Subscribe(logEvents)
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
	gravity := loop.NewGravitySystem(opts.TickInterval)

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.InputSystem{Queue: queue})
	scheduler.Register(gravity)

	game := &Game{
		engine:    engine,
		scheduler: scheduler,
		queue:     queue,
		keys:      defaultKeys(),
		scale:     opts.Scale,
	}

	if opts.DebugUI {
		game.imguiBackend = debugui_ebiten.NewImguiBackend("Blockfall", 1280, 720)
		game.imgui = &debugui.ImguiSystem{}
		game.perf = debugui.NewPerformanceStats(scheduler, 120)
		game.imgui.Add(debugui.NewInspector(engine, queue).Render)
		game.imgui.Add(game.perf.Render)
		scheduler.Register(game.imgui)
	} else {
		ebiten.SetWindowSize(game.width(), game.height())
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	log.Printf("Exited after %d frames", scheduler.Stats().Frames)
}

func logEvents(prev, next tetris.State, out tetris.Outcome) {
	log.Printf("%s -> %s: %s (score %d)", prev.Phase, next.Phase, out.Events, next.Score)
}
