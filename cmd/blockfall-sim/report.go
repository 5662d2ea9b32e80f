package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
)

type Report struct {
	Duration     time.Duration
	Seed         uint64
	TickInterval time.Duration
	FrameStep    time.Duration

	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Timings
	Game           GameTotals
	Scheduler      *loop.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameTotals accumulates what happened across every game of a run.
type GameTotals struct {
	Games     int
	Pieces    int
	Lines     int
	Ticks     int64
	BestScore int
}

// LinesPerGame is zero until a game has finished.
func (g GameTotals) LinesPerGame() float64 {
	if g.Games == 0 {
		return 0
	}
	return float64(g.Lines) / float64(g.Games)
}

// Timings summarizes frame update durations.
type Timings struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (t *Timings) Finalize() {
	n := len(t.Samples)
	if n == 0 {
		return
	}

	sorted := slices.Clone(t.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	t.Min, t.Max = sorted[0], sorted[n-1]
	t.Avg = total / time.Duration(n)
	t.P99 = sorted[(n-1)*99/100]
}

var reportFuncs = template.FuncMap{
	"mib": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"growth": func(end, start uint64) string {
		return fmt.Sprintf("%+.2f", (float64(end)-float64(start))/1024/1024)
	},
	"gcs": func(end, start uint32) uint32 {
		return end - start
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Gravity Interval:** {{.TickInterval}}
- **Frame Step:** {{.FrameStep}}

## Games
- **Games Finished:** {{.Game.Games}}
- **Pieces Settled:** {{.Game.Pieces}}
- **Lines Cleared:** {{.Game.Lines}} ({{printf "%.2f" .Game.LinesPerGame}} per game)
- **Gravity Ticks:** {{.Game.Ticks}}
- **Best Score:** {{.Game.BestScore}}

## Frames
- **Updates:** {{.TotalUpdates}} in {{.TotalTime}} ({{.SimulatedTime}} simulated)
- **Update Time:** avg {{.UpdateTime.Avg}}, p99 {{.UpdateTime.P99}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
{{with .Scheduler}}
## Systems
| System | Runs | Actions | Avg | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.Actions}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
## Memory (MiB)
- Heap in use: {{mib .MemStatsEnd.HeapAlloc}} ({{growth .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Allocated during run: {{growth .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- GC cycles: {{gcs .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{- if .GCPauseMetrics}}
- GC pause total: {{ns .MemStatsEnd.PauseTotalNs}}
{{- end}}
`

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
