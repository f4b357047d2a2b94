package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/planner"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/report"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/store"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("inawo %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	var (
		configPath string
		eventID    string
		template   string
	)
	flag.StringVar(&configPath, "config", model.DefaultConfigPath(), "path to the YAML config file")
	flag.StringVar(&eventID, "event", "", "event to show (default: the active event)")
	flag.StringVar(&template, "template", "", "apply a task template (wedding, conference, project) to the active event")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, configPath, eventID, template); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, eventID, template string) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := model.ApplyEnv(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	s, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	loc := cfg.Display.Location()
	p, err := planner.Load(ctx, s,
		planner.WithLogger(logger),
		planner.WithLocation(loc),
		planner.WithSeedTasks(cfg.Storage.Seed),
	)
	if err != nil {
		return fmt.Errorf("loading planner: %w", err)
	}

	if template != "" {
		added, err := p.ApplyTemplate(ctx, template)
		if err != nil {
			return err
		}
		logger.Info("applied template", "template", template, "tasks", len(added))
	}

	event := p.ActiveEvent()
	if eventID != "" {
		if event, err = p.Event(eventID); err != nil {
			return err
		}
	}
	dash, err := p.Dashboard(event.ID)
	if err != nil {
		return err
	}

	return report.Render(os.Stdout, report.Input{
		Event:     event,
		Dashboard: dash,
		Tasks:     p.TasksForEvent(event.ID),
		Now:       p.Now(),
		Loc:       loc,
	})
}

func newLogger(cfg model.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}
