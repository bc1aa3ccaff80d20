// Package errors provides structured errors for the rpg-idle engine and its
// storage layers.
//
// Gameplay rejections (not enough gold, unknown item, starting a gate while
// in combat) are never errors: the reducer reports them as events. Errors are
// reserved for configuration mistakes, storage failures and corrupt saves.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("save slot not found")
//	err := errors.InvalidArgumentf("unknown store backend: %s", backend)
//
// Adding metadata:
//
//	err := errors.CorruptSave("save violates invariants").
//	    WithMeta("slot", slot)
//
// Wrapping errors preserves the code of the wrapped error:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load game")
//	}
//
// # Error Checking
//
//	if errors.IsCorruptSave(err) {
//	    // start a fresh game
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Engine == nil {
//	    vb.RequiredField("Engine")
//	}
//	return vb.Build()
package errors
