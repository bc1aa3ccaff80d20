package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var commandCmd = &cobra.Command{
	Use:   "command <name> [args...]",
	Short: "Apply a single command and save",
	Long: `Apply a single command to the slot and save the result. Commands:

  start-gate <gate-id>     tick                 dismiss            abandon
  rest                     allocate <stat>      use <item-id>
  equip <item-id>          unequip <slot>       buy <potion|rune|key>
  sell <item-id>           refresh              quest <quest-id> [amount]
  forfeit                  advance-day          sync-date <yyyy-mm-dd>

Fights are not persisted: a started gate only lasts for this command.
Use "play" to fight.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command, err := game.ParseCommand(args[0], args[1:])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.load(ctx); err != nil {
			return err
		}
		if _, err := a.dispatch(ctx, command); err != nil {
			return err
		}
		return a.save(ctx)
	},
}
