// SPDX-License-Identifier: MIT

package backpack

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/persona"
)

// ErrSlotNotFound indicates Load on a slot that was never saved.
var ErrSlotNotFound = errors.New("backpack: slot not found")

const schemaV1 = `
CREATE TABLE IF NOT EXISTS backpacks (
	slot       TEXT PRIMARY KEY,
	persona    TEXT NOT NULL DEFAULT 'balanced',
	capacity   INTEGER NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS backpack_items (
	slot            TEXT NOT NULL REFERENCES backpacks(slot) ON DELETE CASCADE,
	position        INTEGER NOT NULL,
	instance        TEXT NOT NULL,
	item_id         TEXT NOT NULL DEFAULT '',
	name            TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	weight          INTEGER NOT NULL DEFAULT 0,
	value           INTEGER NOT NULL DEFAULT 0,
	attack          INTEGER NOT NULL DEFAULT 0,
	defense         INTEGER NOT NULL DEFAULT 0,
	image           TEXT NOT NULL DEFAULT '',
	score           INTEGER NOT NULL DEFAULT 0,
	effective_value INTEGER NOT NULL DEFAULT 0,
	preferred       INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (slot, position)
);
`

// Snapshot is one saved backpack.
type Snapshot struct {
	Slot      string
	Persona   persona.Persona
	Capacity  int
	Items     []item.ScoredItem
	UpdatedAt time.Time
}

// Store is a SQLite-backed slot store. Safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("backpack: open database: %w", err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("backpack: migrate schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces snap.Slot atomically. Items without an instance are stamped.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	items := append([]item.ScoredItem(nil), snap.Items...)
	item.Stamp(items)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("backpack: begin: %w", err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO backpacks (slot, persona, capacity, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET persona = excluded.persona, capacity = excluded.capacity, updated_at = excluded.updated_at`
	if _, err := tx.ExecContext(ctx, upsert, snap.Slot, snap.Persona.String(), snap.Capacity, s.now().Unix()); err != nil {
		return fmt.Errorf("backpack: save slot %q: %w", snap.Slot, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM backpack_items WHERE slot = ?`, snap.Slot); err != nil {
		return fmt.Errorf("backpack: clear slot %q: %w", snap.Slot, err)
	}

	const insert = `INSERT INTO backpack_items
(slot, position, instance, item_id, name, category, weight, value, attack, defense, image, score, effective_value, preferred)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for pos, it := range items {
		_, err := tx.ExecContext(ctx, insert,
			snap.Slot, pos, it.Instance.String(), it.ID, it.Name, it.Category,
			it.Weight, it.Value, it.Attack, it.Defense, it.Image,
			it.Score, it.EffectiveValue, boolToInt(it.Preferred),
		)
		if err != nil {
			return fmt.Errorf("backpack: save item %d of %q: %w", pos, snap.Slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("backpack: commit: %w", err)
	}
	return nil
}

// Load returns the snapshot saved under slot, or ErrSlotNotFound.
func (s *Store) Load(ctx context.Context, slot string) (Snapshot, error) {
	snap := Snapshot{Slot: slot}

	var key string
	var updated int64
	row := s.db.QueryRowContext(ctx, `SELECT persona, capacity, updated_at FROM backpacks WHERE slot = ?`, slot)
	if err := row.Scan(&key, &snap.Capacity, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
		}
		return Snapshot{}, fmt.Errorf("backpack: load slot %q: %w", slot, err)
	}
	snap.Persona = persona.MustParse(key)
	snap.UpdatedAt = time.Unix(updated, 0)

	rows, err := s.db.QueryContext(ctx, `SELECT instance, item_id, name, category, weight, value, attack, defense, image, score, effective_value, preferred
FROM backpack_items WHERE slot = ? ORDER BY position`, slot)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backpack: load items of %q: %w", slot, err)
	}
	defer rows.Close()

	snap.Items = []item.ScoredItem{}
	for rows.Next() {
		var (
			it        item.ScoredItem
			instance  string
			preferred int
		)
		if err := rows.Scan(&instance, &it.ID, &it.Name, &it.Category, &it.Weight, &it.Value,
			&it.Attack, &it.Defense, &it.Image, &it.Score, &it.EffectiveValue, &preferred); err != nil {
			return Snapshot{}, fmt.Errorf("backpack: scan item of %q: %w", slot, err)
		}
		if it.Instance, err = uuid.Parse(instance); err != nil {
			return Snapshot{}, fmt.Errorf("backpack: item instance %q: %w", instance, err)
		}
		it.Preferred = preferred != 0
		snap.Items = append(snap.Items, it)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("backpack: iterate items of %q: %w", slot, err)
	}
	return snap, nil
}

// Slots lists saved slot names in order.
func (s *Store) Slots(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slot FROM backpacks ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("backpack: list slots: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("backpack: scan slot: %w", err)
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}

// Delete removes a slot and its items. Deleting a missing slot is a no-op.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM backpacks WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("backpack: delete slot %q: %w", slot, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
