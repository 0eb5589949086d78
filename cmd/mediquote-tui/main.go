package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/config"
	"github.com/rgehrsitz/mediquote/internal/prediction"
	"github.com/rgehrsitz/mediquote/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:           "mediquote-tui",
		Short:         "Interactive health insurance premium estimator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	root.Flags().String("settings", "", "Path to a settings YAML file")
	root.Flags().Bool("debug", false, "Enable debug logging")
	root.Flags().String("log-file", "", "Write logs to this file (the terminal is taken by the UI)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("settings")
	debug, _ := cmd.Flags().GetBool("debug")
	logFile, _ := cmd.Flags().GetString("log-file")

	settings, err := config.LoadSettings(path)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := settings.NewLogger(logOut, debug)

	client := prediction.NewClient(settings.PredictionURL, prediction.WithTimeout(settings.RequestTimeout))
	engine := calculation.NewEstimateEngine(client)
	engine.SetLogger(logger)
	logger.Debugf("starting TUI against %s", client.URL())

	p := tea.NewProgram(
		tui.NewModel(engine),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
