package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/tinytelemetry/diagviz/internal/chart"
	"github.com/tinytelemetry/diagviz/internal/diag"
	"github.com/tinytelemetry/diagviz/internal/visualizer"
)

// session is the registry, collectors and visualizer built from config.
type session struct {
	registry *diag.Registry
	frames   *diag.FrameTime
	wave     *diag.Wave
	vis      *visualizer.Visualizer
}

func newSession(cfg cliConfig) (*session, error) {
	filter, err := cfg.filterPolicy()
	if err != nil {
		return nil, err
	}
	rules, err := cfg.formatRules()
	if err != nil {
		return nil, err
	}
	style, err := chart.LoadStyle(cfg.StyleFile)
	if err != nil {
		return nil, err
	}

	plugin := visualizer.NewPlugin().
		Interval(cfg.Interval).
		Filter(filter).
		Style(style)
	for _, r := range rules {
		plugin.Format(r)
	}

	s := &session{registry: diag.NewRegistry()}
	s.frames = diag.RegisterFrameTime(s.registry)
	if cfg.RuntimeStats {
		diag.RegisterRuntime(s.registry)
	}
	if cfg.Wave {
		s.wave = diag.RegisterWave(s.registry, 0)
	}
	s.vis = plugin.Build()

	log.Printf("session: interval=%s filter=%s rules=%d diagnostics=%d",
		cfg.Interval, filter.Kind(), len(rules), s.registry.Len())
	return s, nil
}

// step runs one simulated frame.
func (s *session) step(elapsed time.Duration) {
	s.frames.Frame(elapsed)
	if s.wave != nil {
		s.wave.Advance(elapsed)
	}
	s.vis.Update(elapsed, s.registry)
}

// runDump simulates frames at the configured frame interval and writes
// the drawing calls of the final frame to w.
func runDump(cfg cliConfig, frames int, w io.Writer) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	if cfg.RuntimeStats {
		diag.ApplyRuntime(s.registry, diag.ReadRuntime())
	}
	for range frames {
		s.step(cfg.FrameInterval)
	}

	rec := chart.NewRecorder()
	s.vis.Render(rec)
	if err := rec.Dump(w); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}
