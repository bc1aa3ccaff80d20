package game

import (
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
)

// State is what the reducer works on: the persisted game plus the live
// combat session, if any. The session is never persisted.
type State struct {
	Game   *idle.GameState
	Combat *combat.Session
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	return State{Game: s.Game.Clone(), Combat: s.Combat.Clone()}
}

// ReducerConfig holds the dependencies of the reducer
type ReducerConfig struct {
	Engine   engine.Engine
	Resolver combat.Resolver
}

// Validate ensures all required dependencies are provided
func (c *ReducerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("engine")
	}
	if c.Resolver == nil {
		vb.RequiredField("resolver")
	}
	return vb.Build()
}

// Reducer applies commands to game state. Every command is total: one that
// cannot act leaves the state unchanged and emits a rejected event.
type Reducer struct {
	engine   engine.Engine
	resolver combat.Resolver
}

// NewReducer creates a reducer
func NewReducer(cfg *ReducerConfig) (*Reducer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid reducer config")
	}
	return &Reducer{engine: cfg.Engine, resolver: cfg.Resolver}, nil
}

// Apply returns the state after cmd and the events it emitted, in order.
// The input state is not modified.
func (r *Reducer) Apply(state State, cmd Command) (State, []Event) {
	if state.Game == nil {
		return state, []Event{rejectf("no game is loaded")}
	}
	next := state.Clone()
	if cmd == nil {
		return next, []Event{rejectf("empty command")}
	}
	if next.Combat != nil && !allowedInSession(cmd) {
		return next, []Event{sessionRejection(next.Combat, cmd)}
	}

	var events []Event
	switch c := cmd.(type) {
	case StartGate:
		events = r.startGate(&next, c)
	case ResolveTick:
		events = r.resolveTick(&next)
	case DismissResult:
		events = dismissResult(&next)
	case AbandonGate:
		events = abandonGate(&next)
	case Rest:
		events = r.rest(next.Game)
	case AllocateStat:
		events = r.allocateStat(next.Game, c)
	case UseItem:
		events = useItem(next.Game, c)
	case Equip:
		events = equip(next.Game, c)
	case Unequip:
		events = unequip(next.Game, c)
	case BuyItem:
		events = r.buyItem(next.Game, c)
	case SellItem:
		events = sellItem(next.Game, c)
	case RefreshGates:
		events = r.refreshGates(next.Game)
	case ProgressDailyQuest:
		events = r.progressQuest(next.Game, c)
	case ForfeitDaily:
		events = r.forfeitDaily(next.Game)
	case AdvanceDay:
		events = r.advanceDay(next.Game)
	case SyncDate:
		events = r.syncDate(next.Game, c)
	default:
		events = []Event{rejectf("unsupported command %s", cmd.Name())}
	}
	return next, events
}

// allowedInSession lists what may act while a fight or its result is open
func allowedInSession(cmd Command) bool {
	switch cmd.(type) {
	case UseItem, ResolveTick, DismissResult, AbandonGate, SyncDate:
		return true
	default:
		return false
	}
}

func sessionRejection(session *combat.Session, cmd Command) Event {
	if session.Terminal() {
		return rejectf("cannot %s before dismissing the result of %s", cmd.Name(), session.Gate.Name)
	}
	if _, ok := cmd.(StartGate); ok {
		return rejectf("already fighting in %s", session.Gate.Name)
	}
	return rejectf("cannot %s during a fight", cmd.Name())
}

func (r *Reducer) startGate(s *State, c StartGate) []Event {
	g := s.Game
	i, ok := idle.FindGate(g.Gates, c.GateID)
	if !ok {
		return []Event{rejectf("no gate %s", c.GateID)}
	}
	if g.Player.HP <= 0 {
		return []Event{rejectf("too wounded to fight, rest first")}
	}

	gate := g.Gates[i]
	s.Combat = r.resolver.Start(gate)
	return []Event{logf("Entered %s. %s awaits with %d HP. Your power %d, recommended %d",
		gate.Name, gate.Boss.Name, gate.Boss.MaxHP, r.engine.Power(&g.Player), gate.RecommendedPower)}
}

func (r *Reducer) resolveTick(s *State) []Event {
	session := s.Combat
	if session == nil {
		return []Event{rejectf("not in a fight")}
	}

	p := &s.Game.Player
	hpBefore := p.HP
	res := r.resolver.Tick(session, s.Game)
	if res.Ignored {
		return []Event{logf("The fight in %s is over (%s), dismiss the result to continue", session.Gate.Name, res.State)}
	}

	boss := session.Gate.Boss
	events := []Event{newEvent(EventDamage, "Tick %d: you hit %s for %d (%d/%d). %s hits you for %d (%d/%d)",
		res.Tick, boss.Name, res.PlayerDamage, res.EnemyHP, boss.MaxHP,
		boss.Name, res.BossDamage, max(0, hpBefore-res.BossDamage), p.MaxHP)}
	if res.Upkeep > 0 {
		events = append(events, logf("Allies drew %d MP upkeep", res.Upkeep))
	}

	switch res.State {
	case combat.StateVictory:
		events = append(events, victoryEvents(session)...)
	case combat.StateDefeat:
		d := session.Defeat
		events = append(events, newEvent(EventDefeat, "Defeated by %s. Lost %d gold, HP restored to %d",
			boss.Name, d.GoldLost, d.HP))
	}
	return events
}

func victoryEvents(session *combat.Session) []Event {
	v := session.Victory
	events := []Event{newEvent(EventVictory, "%s cleared! +%d EXP, +%d gold", session.Gate.Name, v.Exp, v.Gold)}
	events = append(events, levelUpEvents(v.LevelGain)...)
	for _, up := range v.AllyLevelUps {
		events = append(events, newEvent(EventLevelUp, "%s reached ally level %d", up.Name, up.Level))
	}

	if v.Loot != nil {
		events = append(events, newEvent(EventLoot, "Found %s", v.Loot.Name))
	}

	if v.Binding != nil {
		if v.Binding.Bound() {
			ally := v.Binding.Ally
			events = append(events, newEvent(EventAllyBound, "Bound %s, a %s %s with %d power",
				ally.Name, ally.Rarity, ally.Role, ally.Power))
		} else {
			events = append(events, newEvent(EventBindingFailed, "The spirit slipped away (%.0f%% chance)",
				v.Binding.Chance*100))
		}
	}

	if v.PoolRegenerated {
		events = append(events, logf("New gates have opened"))
	}
	return events
}

func levelUpEvents(out *engine.LevelGainOutput) []Event {
	if out == nil || out.LevelsGained == 0 {
		return nil
	}
	return []Event{newEvent(EventLevelUp, "Level up! Now level %d (+%d stat points)", out.Level, out.StatPoints)}
}

func dismissResult(s *State) []Event {
	switch {
	case s.Combat == nil:
		return []Event{rejectf("no result to dismiss")}
	case !s.Combat.Terminal():
		return []Event{rejectf("the fight in %s is still going, abandon it to leave", s.Combat.Gate.Name)}
	}
	name := s.Combat.Gate.Name
	s.Combat = nil
	return []Event{logf("Left %s", name)}
}

func abandonGate(s *State) []Event {
	if s.Combat == nil {
		return []Event{rejectf("not in a fight")}
	}
	name := s.Combat.Gate.Name
	s.Combat = nil
	return []Event{logf("Abandoned %s", name)}
}

func (r *Reducer) rest(g *idle.GameState) []Event {
	p := &g.Player
	if p.Fatigue <= 0 && p.HP >= p.MaxHP && p.MP >= p.MaxMP {
		return []Event{rejectf("already fully rested")}
	}

	b := &r.engine.Balance().Rest
	p.SetFatigue(p.Fatigue - b.FatigueRecovery)
	p.SetHP(p.HP + int(math.Floor(float64(p.MaxHP)*b.HealRatio)))
	p.SetMP(p.MP + int(math.Floor(float64(p.MaxMP)*b.HealRatio)))
	return []Event{logf("Rested. HP %d/%d, MP %d/%d, fatigue %.1f", p.HP, p.MaxHP, p.MP, p.MaxMP, p.Fatigue)}
}

func (r *Reducer) allocateStat(g *idle.GameState, c AllocateStat) []Event {
	p := &g.Player
	switch {
	case !c.Stat.IsValid():
		return []Event{rejectf("unknown stat %q", c.Stat)}
	case p.StatPoints <= 0:
		return []Event{rejectf("no stat points to spend")}
	}

	p.Stats.Add(c.Stat, 1)
	p.StatPoints--
	return []Event{logf("%s raised to %d. Power is now %d", c.Stat, p.Stats.Get(c.Stat), r.engine.Power(p))}
}

func useItem(g *idle.GameState, c UseItem) []Event {
	p := &g.Player
	i, ok := p.FindItem(c.ItemID)
	if !ok {
		return []Event{rejectf("no item %s", c.ItemID)}
	}

	item := p.Inventory[i]
	switch item.Kind {
	case idle.ItemPotion:
		if p.HP >= p.MaxHP {
			return []Event{rejectf("HP is already full")}
		}
		before := p.HP
		p.SetHP(p.HP + item.Potion.Heal)
		p.RemoveItem(item.ID)
		return []Event{logf("Used %s: +%d HP (%d/%d)", item.Name, p.HP-before, p.HP, p.MaxHP)}
	case idle.ItemRune:
		p.Stats.Add(item.Rune.Stat, item.Rune.Bonus)
		p.RemoveItem(item.ID)
		return []Event{logf("Used %s: %s +%d", item.Name, item.Rune.Stat, item.Rune.Bonus)}
	case idle.ItemEquipment:
		return []Event{rejectf("%s is equipment, equip it instead", item.Name)}
	default:
		return []Event{rejectf("%s cannot be used", item.Name)}
	}
}

func equip(g *idle.GameState, c Equip) []Event {
	p := &g.Player
	i, ok := p.FindItem(c.ItemID)
	if !ok {
		return []Event{rejectf("no item %s", c.ItemID)}
	}
	item := p.Inventory[i]
	if item.Kind != idle.ItemEquipment {
		return []Event{rejectf("%s is not equipment", item.Name)}
	}

	p.RemoveItem(item.ID)
	fx := item.Equipment
	msg := fmt.Sprintf("Equipped %s (%s +%d)", item.Name, fx.Stat, fx.Bonus)
	if prev := p.Equipped.Set(fx.Slot, &item); prev != nil {
		p.AddItem(*prev)
		msg += fmt.Sprintf(", %s returned to the bag", prev.Name)
	}
	return []Event{logf("%s", msg)}
}

func unequip(g *idle.GameState, c Unequip) []Event {
	p := &g.Player
	if !c.Slot.IsValid() {
		return []Event{rejectf("unknown slot %q", c.Slot)}
	}
	item := p.Equipped.Get(c.Slot)
	if item == nil {
		return []Event{rejectf("nothing equipped as %s", c.Slot)}
	}

	p.Equipped.Set(c.Slot, nil)
	p.AddItem(*item)
	return []Event{logf("Unequipped %s", item.Name)}
}

func (r *Reducer) buyItem(g *idle.GameState, c BuyItem) []Event {
	price, ok := r.engine.ShopPrice(c.Kind)
	if !ok {
		return []Event{rejectf("the shop does not sell %q", c.Kind)}
	}
	if g.Gold < price {
		return []Event{rejectf("%s costs %d gold, you have %d", c.Kind, price, g.Gold)}
	}

	item, _ := r.engine.ShopItem(c.Kind)
	g.AddGold(-price)
	g.Player.AddItem(item)
	return []Event{logf("Bought %s for %d gold", item.Name, price)}
}

func sellItem(g *idle.GameState, c SellItem) []Event {
	p := &g.Player
	item, ok := p.RemoveItem(c.ItemID)
	if !ok {
		for _, eq := range p.Equipped.Items() {
			if eq.ID == c.ItemID {
				return []Event{rejectf("unequip %s before selling it", eq.Name)}
			}
		}
		return []Event{rejectf("no item %s", c.ItemID)}
	}

	g.AddGold(item.SellValue)
	return []Event{logf("Sold %s for %d gold", item.Name, item.SellValue)}
}

func (r *Reducer) refreshGates(g *idle.GameState) []Event {
	p := &g.Player
	cost := r.engine.Balance().Shop.RefreshGoldCost

	var paid string
	switch {
	case p.Keys > 0:
		p.Keys--
		paid = "a key"
	case g.Gold >= cost:
		g.AddGold(-cost)
		paid = fmt.Sprintf("%d gold", cost)
	default:
		return []Event{rejectf("refreshing gates needs a key or %d gold", cost)}
	}

	g.Gates = r.engine.GeneratePool(p.Level)
	return []Event{logf("Spent %s to refresh the gates, %d are open", paid, len(g.Gates))}
}

func (r *Reducer) progressQuest(g *idle.GameState, c ProgressDailyQuest) []Event {
	out := r.engine.ProgressQuest(g, c.QuestID, c.Amount)
	if out.Rejected != "" {
		return []Event{rejectf("%s", out.Rejected)}
	}

	q := out.Quest
	events := []Event{newEvent(EventQuestProgress, "%s %s: %d/%d (+%d)", q.Difficulty, q.Type, q.Have, q.Need, out.Added)}
	if out.Completed {
		msg := fmt.Sprintf("Quest complete: %s. +%d EXP, +%d gold", q.Type, q.RewardExp, q.RewardGold)
		if q.Bonus != nil {
			msg += fmt.Sprintf(", bonus %d keys and %d stat points", q.Bonus.Keys, q.Bonus.StatPoints)
		}
		events = append(events, newEvent(EventQuestComplete, "%s", msg))
		events = append(events, levelUpEvents(out.LevelGain)...)
	}
	if out.DayComplete {
		events = append(events, newEvent(EventDailyComplete, "All daily quests complete! +%d reputation (%d total)",
			out.DayBonus, g.Daily.Reputation))
	}
	return events
}

func (r *Reducer) forfeitDaily(g *idle.GameState) []Event {
	lost, ok := r.engine.ForfeitDaily(g)
	if !ok {
		return []Event{rejectf("today's quests are already settled")}
	}
	return []Event{logf("Forfeited today's quests. -%d reputation", lost)}
}

func (r *Reducer) advanceDay(g *idle.GameState) []Event {
	date := clock.NextDate(g.GameTime.Date)
	if date == "" {
		date = g.GameTime.Date
	}
	r.engine.RollOver(g, date)
	return rolloverEvents(g)
}

// syncDate rolls over only when date is later than the game date, so a
// manual advance ahead of the calendar is never undone
func (r *Reducer) syncDate(g *idle.GameState, c SyncDate) []Event {
	if _, err := time.Parse(clock.DateLayout, c.Date); err != nil {
		return []Event{rejectf("invalid date %q", c.Date)}
	}
	if c.Date <= g.GameTime.Date {
		return nil
	}
	r.engine.RollOver(g, c.Date)
	return rolloverEvents(g)
}

func rolloverEvents(g *idle.GameState) []Event {
	return []Event{newEvent(EventDayRollover, "Day %d begins (%s) with %d new quests",
		g.GameTime.Day, g.GameTime.Date, len(g.Daily.Quests))}
}
