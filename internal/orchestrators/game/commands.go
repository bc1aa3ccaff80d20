package game

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Command is a player intent applied to the game by the reducer. The set
// is closed: only types in this package implement it.
type Command interface {
	Name() string
	command()
}

// Command names as typed on the command line
const (
	CmdStartGate     = "start-gate"
	CmdResolveTick   = "tick"
	CmdDismiss       = "dismiss"
	CmdAbandon       = "abandon"
	CmdRest          = "rest"
	CmdAllocateStat  = "allocate"
	CmdUseItem       = "use"
	CmdEquip         = "equip"
	CmdUnequip       = "unequip"
	CmdBuyItem       = "buy"
	CmdSellItem      = "sell"
	CmdRefreshGates  = "refresh"
	CmdProgressQuest = "quest"
	CmdForfeitDaily  = "forfeit"
	CmdAdvanceDay    = "advance-day"
	CmdSyncDate      = "sync-date"
)

// StartGate enters the gate with GateID
type StartGate struct{ GateID string }

// ResolveTick advances the current fight by one tick
type ResolveTick struct{}

// DismissResult acknowledges a finished fight and returns to idle
type DismissResult struct{}

// AbandonGate discards the current fight between ticks with no side effects
type AbandonGate struct{}

// Rest recovers fatigue, hp and mp
type Rest struct{}

// AllocateStat spends one stat point
type AllocateStat struct{ Stat idle.Stat }

// UseItem consumes a potion or rune
type UseItem struct{ ItemID string }

// Equip moves an equipment item from the inventory into its slot
type Equip struct{ ItemID string }

// Unequip moves the item in Slot back to the inventory
type Unequip struct{ Slot idle.Slot }

// BuyItem purchases a shop item of Kind
type BuyItem struct{ Kind idle.ItemKind }

// SellItem sells an inventory item for its sell value
type SellItem struct{ ItemID string }

// RefreshGates replaces the gate pool for a key or gold
type RefreshGates struct{}

// ProgressDailyQuest records Amount reps. Zero or less means the quest's step.
type ProgressDailyQuest struct {
	QuestID string
	Amount  int
}

// ForfeitDaily gives up the rest of today's quests
type ForfeitDaily struct{}

// AdvanceDay rolls over to the next calendar day
type AdvanceDay struct{}

// SyncDate rolls the day over when Date is later than the game date
type SyncDate struct{ Date string }

func (StartGate) Name() string          { return CmdStartGate }
func (ResolveTick) Name() string        { return CmdResolveTick }
func (DismissResult) Name() string      { return CmdDismiss }
func (AbandonGate) Name() string        { return CmdAbandon }
func (Rest) Name() string               { return CmdRest }
func (AllocateStat) Name() string       { return CmdAllocateStat }
func (UseItem) Name() string            { return CmdUseItem }
func (Equip) Name() string              { return CmdEquip }
func (Unequip) Name() string            { return CmdUnequip }
func (BuyItem) Name() string            { return CmdBuyItem }
func (SellItem) Name() string           { return CmdSellItem }
func (RefreshGates) Name() string       { return CmdRefreshGates }
func (ProgressDailyQuest) Name() string { return CmdProgressQuest }
func (ForfeitDaily) Name() string       { return CmdForfeitDaily }
func (AdvanceDay) Name() string         { return CmdAdvanceDay }
func (SyncDate) Name() string           { return CmdSyncDate }

func (StartGate) command()          {}
func (ResolveTick) command()        {}
func (DismissResult) command()      {}
func (AbandonGate) command()        {}
func (Rest) command()               {}
func (AllocateStat) command()       {}
func (UseItem) command()            {}
func (Equip) command()              {}
func (Unequip) command()            {}
func (BuyItem) command()            {}
func (SellItem) command()           {}
func (RefreshGates) command()       {}
func (ProgressDailyQuest) command() {}
func (ForfeitDaily) command()       {}
func (AdvanceDay) command()         {}
func (SyncDate) command()           {}

// ParseCommand builds a command from its name and arguments
func ParseCommand(name string, args []string) (Command, error) {
	arg := func(field string) (string, error) {
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return "", errors.InvalidArgumentf("%s requires %s", name, field)
		}
		return strings.TrimSpace(args[0]), nil
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case CmdStartGate:
		id, err := arg("a gate id")
		if err != nil {
			return nil, err
		}
		return StartGate{GateID: id}, nil
	case CmdResolveTick:
		return ResolveTick{}, nil
	case CmdDismiss:
		return DismissResult{}, nil
	case CmdAbandon:
		return AbandonGate{}, nil
	case CmdRest:
		return Rest{}, nil
	case CmdAllocateStat:
		s, err := arg("a stat")
		if err != nil {
			return nil, err
		}
		stat, ok := idle.ParseStat(s)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown stat %q", s)
		}
		return AllocateStat{Stat: stat}, nil
	case CmdUseItem:
		id, err := arg("an item id")
		if err != nil {
			return nil, err
		}
		return UseItem{ItemID: id}, nil
	case CmdEquip:
		id, err := arg("an item id")
		if err != nil {
			return nil, err
		}
		return Equip{ItemID: id}, nil
	case CmdUnequip:
		s, err := arg("a slot")
		if err != nil {
			return nil, err
		}
		slot := idle.Slot(strings.ToLower(s))
		if !slot.IsValid() {
			return nil, errors.InvalidArgumentf("unknown slot %q", s)
		}
		return Unequip{Slot: slot}, nil
	case CmdBuyItem:
		k, err := arg("an item kind")
		if err != nil {
			return nil, err
		}
		kind := idle.ItemKind(strings.ToLower(k))
		if !kind.IsValid() {
			return nil, errors.InvalidArgumentf("unknown item kind %q", k)
		}
		return BuyItem{Kind: kind}, nil
	case CmdSellItem:
		id, err := arg("an item id")
		if err != nil {
			return nil, err
		}
		return SellItem{ItemID: id}, nil
	case CmdRefreshGates:
		return RefreshGates{}, nil
	case CmdProgressQuest:
		id, err := arg("a quest id")
		if err != nil {
			return nil, err
		}
		cmd := ProgressDailyQuest{QuestID: id}
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, errors.InvalidArgumentf("invalid amount %q", args[1])
			}
			cmd.Amount = n
		}
		return cmd, nil
	case CmdForfeitDaily:
		return ForfeitDaily{}, nil
	case CmdAdvanceDay:
		return AdvanceDay{}, nil
	case CmdSyncDate:
		date, err := arg("a date")
		if err != nil {
			return nil, err
		}
		return SyncDate{Date: date}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown command %q", name)
	}
}
