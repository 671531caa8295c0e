package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Settings settings

	// Results
	GamesOver      int
	TotalFrames    uint64
	TotalTime      time.Duration
	Scores         IntStats
	Lines          IntStats
	Pieces         IntStats
	StepTime       Stats
	Systems        []SystemTotals
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// IntStats summarises one per-game counter.
type IntStats struct {
	Min     int
	Max     int
	Avg     float64
	Total   int
	Samples []int
}

func (s *IntStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	s.Total = 0

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		s.Total += sample
	}
	s.Avg = float64(s.Total) / float64(len(s.Samples))
}

// Add folds one game into the report.
func (r *Report) Add(g GameResult) {
	if g.Over {
		r.GamesOver++
	}
	r.TotalFrames += g.Frames
	r.Scores.Samples = append(r.Scores.Samples, g.Score.Points)
	r.Lines.Samples = append(r.Lines.Samples, g.Score.Lines)
	r.Pieces.Samples = append(r.Pieces.Samples, g.Score.Pieces)
	r.StepTime.Samples = append(r.StepTime.Samples, g.StepTimes...)

	for i, sys := range g.Systems {
		if i >= len(r.Systems) {
			r.Systems = append(r.Systems, SystemTotals{Name: sys.Name})
		}
		total := &r.Systems[i]
		total.Executions += sys.Executions
		total.Total += sys.Total
		total.Max = max(total.Max, sys.Max)
	}
}

func (r *Report) Finalize() {
	r.Scores.Finalize()
	r.Lines.Finalize()
	r.Pieces.Finalize()
	r.StepTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Run Configuration
- **Games:** {{.Settings.Games}}
- **Max Iterations per Game:** {{.Settings.MaxFrames}}
- **Gravity Every:** {{.Settings.Every}}
- **First Seed:** {{.Settings.Seed}}
- **Randomizer:** {{.Settings.Randomizer}}

## Game Results
- **Games Ended by Game Over:** {{.GamesOver}}
- **Total Engine Frames:** {{.TotalFrames}}
- **Total Run Time:** {{.TotalTime}}
- **Score:** min {{.Scores.Min}} / avg {{printf "%.1f" .Scores.Avg}} / max {{.Scores.Max}}
- **Lines:** min {{.Lines.Min}} / avg {{printf "%.1f" .Lines.Avg}} / max {{.Lines.Max}} (total {{.Lines.Total}})
- **Pieces:** min {{.Pieces.Min}} / avg {{printf "%.1f" .Pieces.Avg}} / max {{.Pieces.Max}} (total {{.Pieces.Total}})

## Loop Iteration Time
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: {{.Executions}} runs, avg {{avg .Total .Executions}}, max {{.Max}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"avg": func(total time.Duration, n int64) time.Duration {
			if n == 0 {
				return 0
			}
			return total / time.Duration(n)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
