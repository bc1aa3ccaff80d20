// Package main is the entry point for the idle gate-runner CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/config"
)

var (
	cfg *config.Config

	slotFlag  string
	storeFlag string
	seedFlag  uint64
)

var rootCmd = &cobra.Command{
	Use:   "idle",
	Short: "Idle gate-runner",
	Long: `Idle gate-runner: grow a hunter, clear procedurally generated gates, bind
spirits from fallen bosses and keep up with your daily quests.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("slot") {
			loaded.SlotID = slotFlag
		}
		if cmd.Flags().Changed("store") {
			loaded.Store = storeFlag
		}
		if cmd.Flags().Changed("seed") {
			loaded.Seed = seedFlag
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		cfg = loaded
		slog.SetDefault(cfg.NewLogger(os.Stderr))
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&slotFlag, "slot", "default", "save slot (overrides IDLE_SLOT)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", config.StoreBolt, "save store: redis, bolt or memory (overrides IDLE_STORE)")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "seed for reproducible rolls (overrides IDLE_SEED)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(commandCmd)
	rootCmd.AddCommand(resetCmd)
}
