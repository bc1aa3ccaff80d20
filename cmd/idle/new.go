package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game in the slot, replacing any save",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.NewGame(ctx, &game.NewGameInput{SlotID: a.slotID})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "New game started in slot %s on %s.\n", a.slotID, out.State.GameTime.Date)
		printStatus(cmd.OutOrStdout(), out.State, nil, a.engine.Power(&out.State.Player))
		return nil
	},
}

var resetPurge bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the save in the slot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.close()

		if !resetPurge {
			if _, err := a.service.NewGame(ctx, &game.NewGameInput{SlotID: a.slotID}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Slot %s reset to a new game.\n", a.slotID)
			return nil
		}

		out, err := a.service.DeleteGame(ctx, &game.DeleteGameInput{SlotID: a.slotID})
		if err != nil {
			return err
		}
		if out.Deleted {
			fmt.Fprintf(cmd.OutOrStdout(), "Slot %s erased.\n", a.slotID)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Slot %s was already empty.\n", a.slotID)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetPurge, "purge", false, "delete the save instead of starting over")
}
