package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/diagviz/internal/diag"
	"github.com/tinytelemetry/diagviz/internal/tui"
)

func runTUI(cfg cliConfig) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "diagviz")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	page := tui.NewDiagnosticsPage(s.vis, s.registry, s.frames, s.wave, tui.PageOptions{
		FrameInterval:      cfg.FrameInterval,
		CellWidth:          cfg.CellWidth,
		CellHeight:         cfg.CellHeight,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	})
	app := tui.NewApp(page)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	if cfg.RuntimeStats {
		g.Go(func() error {
			log.Printf("runtime: polling every %s", cfg.RuntimeInterval)
			return diag.PollRuntime(gctx, cfg.RuntimeInterval, func(rs diag.RuntimeSample) {
				p.Send(tui.RuntimeMsg(rs))
			})
		})
	}
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			log.Printf("signal: %s, shutting down", sig)
			p.Quit()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	log.Printf("diagviz: exited")
	return nil
}
