package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mediquote/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mediquote %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mediquote",
		Short:         "Health insurance premium estimator",
		Long:          "Estimate an annual health insurance premium from an applicant profile, then compare, price and simulate buying insurance plans.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("settings", "", "Path to a settings YAML file")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(estimateCmd())
	root.AddCommand(bmiCmd())
	root.AddCommand(plansCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(purchaseCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exampleCmd())
	root.AddCommand(versionCmd())
	return root
}

// loadSettings reads the persistent flags into settings and a logger
func loadSettings(cmd *cobra.Command) (*config.Settings, *logrus.Logger, error) {
	path, _ := cmd.Flags().GetString("settings")
	debugMode, _ := cmd.Flags().GetBool("debug")

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, nil, err
	}
	return settings, settings.NewLogger(cmd.ErrOrStderr(), debugMode), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportError prints err unless the command has already shown it
func reportError(w io.Writer, err error) {
	if errors.Is(err, errPredictionRejected) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
