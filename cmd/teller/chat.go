package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"universalis/cmd/teller/ui"
	"universalis/internal/ledger"
	"universalis/internal/session"
	"universalis/internal/teller"
)

var (
	chatActor     string
	chatAsManager bool
)

// runChat opens the interactive teller window and keeps the background
// session sweeper and settings watcher running alongside it.
func runChat() error {
	mgr, err := loadManager()
	if err != nil {
		return err
	}

	path := ledgerPath
	if path == "" {
		path = mgr.Settings().LedgerPath
	}
	var recorder ui.Recorder
	led, err := ledger.Open(path)
	if err != nil {
		// The window still works without persistence.
		logger.Warn("ledger unavailable, continuing without it", zap.Error(err))
	} else {
		recorder = led
		defer led.Close()
	}

	store := session.NewStore()
	t := teller.New(store, mgr, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		store.Run(ctx, session.SweepInterval, logger)
		return nil
	})
	g.Go(func() error {
		return mgr.Watch(ctx)
	})
	g.Go(func() error {
		defer stop()
		model := ui.NewModel(t, recorder, chatActor, chatAsManager, logger)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	})
	return g.Wait()
}
