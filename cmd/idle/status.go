package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the hunter, gates, inventory and daily quests",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.load(ctx); err != nil {
			return err
		}
		out, err := a.service.GetState(ctx, &game.GetStateInput{SlotID: a.slotID})
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), out.State, out.Combat, out.Power)
		return a.save(ctx)
	},
}

func printStatus(w io.Writer, state *idle.GameState, session *combat.Session, power int) {
	p := state.Player
	fmt.Fprintf(w, "Day %d (%s)\n", state.GameTime.Day, state.GameTime.Date)
	fmt.Fprintf(w, "Level %d  EXP %d/%d  Power %d  Stat points %d\n", p.Level, p.Exp, p.ExpNext, power, p.StatPoints)
	fmt.Fprintf(w, "HP %d/%d  MP %d/%d  Fatigue %.1f\n", p.HP, p.MaxHP, p.MP, p.MaxMP, p.Fatigue)
	fmt.Fprintf(w, "STR %d  AGI %d  INT %d  VIT %d  LUCK %d\n", p.Stats.STR, p.Stats.AGI, p.Stats.INT, p.Stats.VIT, p.Stats.LUCK)
	fmt.Fprintf(w, "Gold %d  Keys %d\n", state.Gold, p.Keys)

	if session != nil {
		boss := session.Boss()
		fmt.Fprintf(w, "\nIn %s (%s): %s %d/%d HP after %d ticks\n",
			session.Gate.Name, session.State, boss.Name, boss.HP, boss.MaxHP, session.Ticks)
	}

	fmt.Fprintln(w, "\nGates:")
	for _, g := range state.Gates {
		fmt.Fprintf(w, "  %-40s %s  power %-4d recommended %-4d %s\n",
			g.ID, g.Rank, g.Power, g.RecommendedPower, g.Name)
	}

	if len(p.Inventory) > 0 {
		fmt.Fprintln(w, "\nInventory:")
		for _, item := range p.Inventory {
			fmt.Fprintf(w, "  %-40s %-9s %-9s q%-3d %s\n", item.ID, item.Kind, item.Rarity, item.Quality, item.Name)
		}
	}

	if equipped := p.Equipped.Items(); len(equipped) > 0 {
		fmt.Fprintln(w, "\nEquipped:")
		for _, item := range equipped {
			fmt.Fprintf(w, "  %-9s %s (%s +%d)\n", item.Equipment.Slot, item.Name, item.Equipment.Stat, item.Equipment.Bonus)
		}
	}

	if len(p.Allies) > 0 {
		fmt.Fprintln(w, "\nAllies:")
		for _, ally := range p.Allies {
			fmt.Fprintf(w, "  %-12s %-9s %-9s power %-4d lv %d  %s\n",
				ally.Name, ally.Rarity, ally.Role, ally.Power, ally.Level, strings.Join(ally.Abilities, ", "))
		}
	}

	d := state.Daily
	status := ""
	switch {
	case d.Completed:
		status = " (complete)"
	case d.Forfeited:
		status = " (forfeited)"
	}
	fmt.Fprintf(w, "\nDaily quests%s, reputation %d:\n", status, d.Reputation)
	for _, q := range d.Quests {
		mark := " "
		if q.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %-40s %-6s %-10s %d/%d\n", mark, q.ID, q.Difficulty, q.Type, q.Have, q.Need)
	}
}
