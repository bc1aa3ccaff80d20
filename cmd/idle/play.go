package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var (
	playGate      string
	playRounds    int
	playRestBelow float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fight gates on a timer until interrupted or out of rounds",
	Long: `Fight gates one tick per IDLE_TICK_INTERVAL. Between fights the hunter
rests when wounded. Progress is saved every IDLE_SAVE_INTERVAL and on exit;
interrupting mid-fight abandons the fight.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playGate, "gate", "", "gate to enter first (default: the weakest gate)")
	playCmd.Flags().IntVar(&playRounds, "rounds", 1, "number of gates to fight, 0 for no limit")
	playCmd.Flags().Float64Var(&playRestBelow, "rest-below", 0.5, "rest before a fight while hp is under this share of max")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.load(ctx); err != nil {
		return err
	}

	saveTicker := time.NewTicker(cfg.SaveInterval)
	defer saveTicker.Stop()

	gateID := playGate
	for round := 1; playRounds == 0 || round <= playRounds; round++ {
		if err := a.restUp(ctx); err != nil {
			return err
		}

		if gateID == "" {
			if gateID, err = a.weakestGate(ctx); err != nil {
				return err
			}
		}
		done, err := a.fight(ctx, gateID, saveTicker.C)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(a.out, "Interrupted.")
			break
		}
		gateID = ""
	}

	// the command context may already be canceled
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	return a.save(saveCtx)
}

// fight runs one gate to its end. It reports false when interrupted.
func (a *app) fight(ctx context.Context, gateID string, saves <-chan time.Time) (bool, error) {
	out, err := a.dispatch(ctx, game.StartGate{GateID: gateID})
	if err != nil {
		return false, err
	}
	if out.Combat == nil {
		return false, fmt.Errorf("could not enter gate %s", gateID)
	}

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_, err := a.dispatch(context.WithoutCancel(ctx), game.AbandonGate{})
			return false, err
		case <-saves:
			if err := a.save(ctx); err != nil {
				return false, err
			}
		case <-ticker.C:
			out, err := a.dispatch(ctx, game.ResolveTick{})
			if err != nil {
				return false, err
			}
			if out.Combat != nil && out.Combat.Terminal() {
				_, err := a.dispatch(ctx, game.DismissResult{})
				return err == nil, err
			}
		}
	}
}

// restUp rests until hp is above the threshold or resting stops helping
func (a *app) restUp(ctx context.Context) error {
	for range 10 {
		state, err := a.service.GetState(ctx, &game.GetStateInput{SlotID: a.slotID})
		if err != nil {
			return err
		}
		p := state.State.Player
		if float64(p.HP) >= float64(p.MaxHP)*playRestBelow && p.Fatigue < idle.MaxFatigue/2 {
			return nil
		}

		out, err := a.dispatch(ctx, game.Rest{})
		if err != nil {
			return err
		}
		if len(out.Events) > 0 && out.Events[len(out.Events)-1].Type == game.EventRejected {
			return nil
		}
	}
	return nil
}

func (a *app) weakestGate(ctx context.Context) (string, error) {
	state, err := a.service.GetState(ctx, &game.GetStateInput{SlotID: a.slotID})
	if err != nil {
		return "", err
	}
	gates := state.State.Gates
	if len(gates) == 0 {
		return "", fmt.Errorf("no gates are open")
	}
	weakest := gates[0]
	for _, g := range gates[1:] {
		if g.Power < weakest.Power {
			weakest = g
		}
	}
	return weakest.ID, nil
}
