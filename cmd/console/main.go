package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"livelink/internal/audit"
	"livelink/internal/config"
	"livelink/internal/console"
	"livelink/internal/services"
	"livelink/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var noAltScreen, noMouse bool
	pflag.StringVarP(&cfg.Console.OperatorID, "operator", "o", cfg.Console.OperatorID, "operator ID recorded on every action")
	pflag.StringVar(&cfg.Console.LogOutput, "log-output", cfg.Console.LogOutput, "log file (stdout belongs to the console)")
	pflag.BoolVar(&noAltScreen, "no-alt-screen", !cfg.Console.AltScreen, "render inline instead of in the alternate screen")
	pflag.BoolVar(&noMouse, "no-mouse", !cfg.Console.Mouse, "disable mouse input")
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logConfig := *cfg.Logger
	logConfig.Output = cfg.Console.LogOutput
	log, err := logger.NewLogger(&logConfig)
	if err != nil {
		return fmt.Errorf("open log %s: %w", cfg.Console.LogOutput, err)
	}

	recorder := audit.NewRecorder(50)
	sinks := []audit.Notifier{recorder}
	if cfg.Audit.Log {
		sinks = append(sinks, audit.NewLogNotifier(logger.NewAuditLoggerFrom(log)))
	}

	service := services.NewAdminService(services.FixtureSeed(), services.Options{
		Notifier:     audit.Multi(sinks...),
		Logger:       log,
		Settings:     cfg.Settings,
		ExpiryWindow: cfg.ExpiryWindow(),
	})

	model := console.NewModel(service, console.Options{
		Operator: cfg.Console.OperatorID,
		Recorder: recorder,
		Currency: cfg.App.Currency,
	})

	var opts []tea.ProgramOption
	if !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.WithOperator(cfg.Console.OperatorID).Info("Console started")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	log.Info("Console stopped")
	return nil
}
