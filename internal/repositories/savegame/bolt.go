package savegame

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

const saveBucket = "savegame"

// BoltConfig holds the configuration for the BoltDB repository
type BoltConfig struct {
	Path string
	// Codec defaults to NewCodec(DefaultMinPoolSize)
	Codec *Codec
}

// Validate ensures all required fields are provided
func (c *BoltConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", c.Path, vb)
	return vb.Build()
}

// BoltRepository stores saves in a local BoltDB file
type BoltRepository struct {
	db    *bbolt.DB
	codec *Codec
}

// OpenBolt opens (creating if needed) the save file at cfg.Path
func OpenBolt(cfg *BoltConfig) (*BoltRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := bbolt.Open(filepath.Clean(strings.TrimSpace(cfg.Path)), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open save file")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(saveBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create save bucket")
	}

	codec := cfg.Codec
	if codec == nil {
		codec = NewCodec(DefaultMinPoolSize)
	}
	return &BoltRepository{db: db, codec: codec}, nil
}

// Ensure BoltRepository implements Repository
var _ Repository = (*BoltRepository)(nil)

// Close closes the underlying database
func (r *BoltRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// PutRaw stores bytes for a slot without encoding them. Used to import
// saves exported by other tools and to plant fixtures.
func (r *BoltRepository) PutRaw(slotID string, data []byte) error {
	if slotID == "" {
		return errors.InvalidArgument(errSlotIDEmpty)
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(saveBucket)).Put([]byte(slotKey(slotID)), data)
	})
}

func (r *BoltRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "save canceled")
	}
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}

	data, err := r.codec.Encode(input.State)
	if err != nil {
		return nil, err
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(saveBucket)).Put([]byte(slotKey(input.SlotID)), data)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store save %s", input.SlotID)
	}
	return &SaveOutput{Bytes: len(data)}, nil
}

func (r *BoltRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load canceled")
	}
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}

	var data []byte
	err := r.db.View(func(tx *bbolt.Tx) error {
		// bytes returned by Get are only valid inside the transaction
		if v := tx.Bucket([]byte(saveBucket)).Get([]byte(slotKey(input.SlotID))); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read save %s", input.SlotID)
	}
	if data == nil {
		return nil, errors.NotFoundf("save %s not found", input.SlotID)
	}

	state, err := r.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{State: state}, nil
}

func (r *BoltRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "delete canceled")
	}
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}

	var deleted bool
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(saveBucket))
		key := []byte(slotKey(input.SlotID))
		deleted = bucket.Get(key) != nil
		return bucket.Delete(key)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %s", input.SlotID)
	}
	return &DeleteOutput{Deleted: deleted}, nil
}
