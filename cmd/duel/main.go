package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"powerplay/application"
	"powerplay/config"
	"powerplay/domain"
	"powerplay/internal/arena"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(ctx, cfg); err != nil {
		slog.ErrorContext(ctx, "duel failed", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "duel finished")
}

func run(ctx context.Context, cfg config.Config) error {
	a := arena.New(arena.Config{TickInterval: cfg.TickInterval, QueueSize: cfg.QueueSize})
	roster := application.Roster{
		FlightDuration: cfg.FlightDuration,
		Options:        []application.Option{application.WithScheduler(a.Scheduler())},
	}

	witch := roster.Witch("Scarlet")
	thief := roster.Thief("Arthur")
	god := roster.God("Seth")
	for _, p := range []*application.Player{witch, thief, god} {
		if err := a.Join(p); err != nil {
			return fmt.Errorf("join %s: %w", p.Name(), err)
		}
		slog.InfoContext(ctx, "player joined", "player", p.Name(), "playerID", p.ID(), "powers", p.Powers(), "health", p.Health())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.Run(egCtx)
	})
	eg.Go(func() error {
		defer cancel()
		return scenario(egCtx, a, cfg.Settle, witch, thief)
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, s := range a.Snapshot() {
		slog.InfoContext(ctx, "final state", "player", s.Name, "health", s.Health, "conditions", s.Conditions.String())
	}
	return nil
}

func scenario(ctx context.Context, a *arena.Arena, settle time.Duration, witch, thief *application.Player) error {
	cmds := []arena.Command{
		arena.Activate(witch.ID(), domain.PowerFlight),
		arena.Activate(thief.ID(), domain.PowerInvisibility),
		arena.Attack(witch.ID(), thief.ID()),
		arena.Attack(witch.ID(), thief.ID()),
		arena.Heal(thief.ID()),
	}
	for _, cmd := range cmds {
		if err := a.Submit(ctx, cmd); err != nil {
			return fmt.Errorf("submit %s: %w", cmd.Kind, err)
		}
	}

	if !waitUntil(ctx, a, a.TickInterval()) {
		return nil
	}
	slog.InfoContext(ctx, "after first exchange", "witch", witch.Health(), "thief", thief.Health(),
		"witchConditions", witch.Conditions().String(), "thiefConditions", thief.Conditions().String())

	if !waitUntil(ctx, a, a.Now()+settle) {
		return nil
	}
	slog.InfoContext(ctx, "effects settled", "now", a.Now(),
		"witchConditions", witch.Conditions().String(), "thiefConditions", thief.Conditions().String())
	return nil
}

// waitUntil はアリーナの仮想時間がdeadlineに達するまで待ちます。ctxが終了した場合はfalseを返します。
func waitUntil(ctx context.Context, a *arena.Arena, deadline time.Duration) bool {
	ticker := time.NewTicker(a.TickInterval())
	defer ticker.Stop()
	for a.Now() < deadline {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
	return true
}
