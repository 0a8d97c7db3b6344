package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmajeed/juno/internal/app"
	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/infrastructure/voice"
)

func newRunCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the assistant session loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return container.Session.Run(cmd.Context())
		},
	}
}

func newAskCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <command...>",
		Short: "Classify and dispatch a typed command once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			// One-shot invocations print rather than speak.
			container.Dispatcher.Speaker = voice.EchoSpeaker{W: cmd.OutOrStdout()}
			container.Workflows.Speaker = container.Dispatcher.Speaker

			result := container.Classifier.Classify(cmd.Context(), text)
			fmt.Fprintf(cmd.OutOrStdout(), "intent=%s action=%s confidence=%.2f\n",
				result.Intent, result.Action, result.Confidence)

			if ok := container.Dispatcher.Dispatch(cmd.Context(), result, text); !ok {
				return fmt.Errorf("command not executed")
			}
			return nil
		},
	}
}

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the command log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Memory == nil {
				return fmt.Errorf("memory is disabled in config")
			}
			entries := container.Memory.History(limit, search)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no history")
				return nil
			}
			for _, entry := range entries {
				status := "ok"
				if !entry.Success {
					status = "failed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-14s %-16s %-6s %s\n",
					entry.Timestamp, entry.Intent, entry.Action, status, entry.Command)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	cmd.Flags().StringVar(&search, "search", "", "filter by substring")
	return cmd
}

func newRoutineCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "routine",
		Short: "Show the current morning routine recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Memory == nil {
				return fmt.Errorf("memory is disabled in config")
			}
			items := container.Memory.MorningRoutine()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no routine learned yet")
				return nil
			}
			for i, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, item.Name, item.Type)
			}
			return nil
		},
	}
}

func newStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Memory == nil {
				return fmt.Errorf("memory is disabled in config")
			}
			stats := container.Memory.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "commands recorded: %d\n", stats.TotalCommands)
			fmt.Fprintf(out, "days tracked:      %d\n", stats.DaysTracked)
			printRanked(out, "top applications", stats.TopApps)
			printRanked(out, "top websites", stats.TopWebsites)
			return nil
		},
	}
}

func printRanked(out io.Writer, title string, items []domain.RankedItem) {
	fmt.Fprintf(out, "%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(out, "  %-16s %d\n", item.Name, item.Count)
	}
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the assistant's environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			for _, check := range report.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "[%-4s] %-16s %s\n", check.Status, check.Name, check.Message)
			}
			if err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("some checks failed")
			}
			return nil
		},
	}
}

func newConfigCommand(container *app.Container) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset {
				if err := container.ConfigLoader.WriteDefaults(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "defaults written")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "settings: %s\n", container.ConfigLoader.ConfigPath())
			fmt.Fprintf(cmd.OutOrStdout(), "commands: %s\n", container.ConfigLoader.CommandsPath())
			fmt.Fprintf(cmd.OutOrStdout(), "data dir: %s\n", container.Config.Memory.DataDir)
			if _, err := os.Stat(container.ConfigLoader.ConfigPath()); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "settings file missing; will be created on next run")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "init", false, "rewrite both files from embedded defaults")
	return cmd
}
