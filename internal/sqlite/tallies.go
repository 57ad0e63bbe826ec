package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// Save inserts or replaces a tally and rewrites tallies.jsonl. An empty
// TallyID gets a new UUID v7 and a zero CreatedAt is stamped with the
// current UTC time. Both are written back to tally only once the tally is
// stored; on error the store and tally are unchanged.
func (b *Backend) Save(tally *types.Tally) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}
	if err := validateTally(tally); err != nil {
		return "", err
	}

	id := tally.TallyID
	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		id = newID.String()
	} else if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidID, id)
	}

	saved := *tally
	saved.TallyID = id
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}

	tx, err := b.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTally(tx, &saved); err != nil {
		return "", err
	}
	if err := b.commitAndPersist(tx); err != nil {
		return "", err
	}

	tally.TallyID = saved.TallyID
	tally.CreatedAt = saved.CreatedAt
	return id, nil
}

// Get returns the tally with the given ID.
func (b *Backend) Get(id string) (*types.Tally, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	tallies, err := queryTallies(b.db, "WHERE t.tally_id = ?", []any{id})
	if err != nil {
		return nil, err
	}
	if len(tallies) == 0 {
		return nil, types.ErrNotFound
	}
	return tallies[0], nil
}

// List returns tallies ordered by creation time, optionally filtered by
// consumer. It returns an empty, non-nil slice when nothing matches.
func (b *Backend) List(consumer string) ([]*types.Tally, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if consumer == "" {
		return queryTallies(b.db, "", nil)
	}
	return queryTallies(b.db, "WHERE t.consumer = ?", []any{consumer})
}

// Delete removes a tally and rewrites tallies.jsonl.
func (b *Backend) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tally_counts WHERE tally_id = ?", id); err != nil {
		return fmt.Errorf("deleting counts: %w", err)
	}
	res, err := tx.Exec("DELETE FROM tallies WHERE tally_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tally: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return b.commitAndPersist(tx)
}

// commitAndPersist rewrites tallies.jsonl from the uncommitted state of tx,
// then commits. If the file cannot be written the caller's deferred
// Rollback discards the change; if the commit fails the file is rewritten
// from the committed state.
func (b *Backend) commitAndPersist(tx *sql.Tx) error {
	if err := b.persistJSONL(tx); err != nil {
		return fmt.Errorf("persisting %s: %w", talliesJSONL, err)
	}
	if err := tx.Commit(); err != nil {
		if restoreErr := b.persistJSONL(b.db); restoreErr != nil {
			return fmt.Errorf("committing: %w (restoring %s: %w)", err, talliesJSONL, restoreErr)
		}
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// validateTally rejects tallies that cannot be stored.
func validateTally(t *types.Tally) error {
	if t == nil || t.Consumer == "" || t.Counts == nil {
		return types.ErrInvalidData
	}
	for item, n := range t.Counts {
		if n < 0 {
			return fmt.Errorf("%w: negative count for %q", types.ErrInvalidData, item)
		}
	}
	return nil
}

// insertTally replaces the tally row and its counts inside tx.
func insertTally(tx *sql.Tx, t *types.Tally) error {
	if _, err := tx.Exec("DELETE FROM tally_counts WHERE tally_id = ?", t.TallyID); err != nil {
		return fmt.Errorf("clearing counts for %s: %w", t.TallyID, err)
	}
	_, err := tx.Exec(
		"INSERT OR REPLACE INTO tallies (tally_id, consumer, created_at) VALUES (?, ?, ?)",
		t.TallyID, t.Consumer, t.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting tally %s: %w", t.TallyID, err)
	}

	stmt, err := tx.Prepare("INSERT INTO tally_counts (tally_id, item, count) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing count insert: %w", err)
	}
	defer stmt.Close()

	for item, n := range t.Counts {
		if _, err := stmt.Exec(t.TallyID, item, n); err != nil {
			return fmt.Errorf("inserting count %q for %s: %w", item, t.TallyID, err)
		}
	}
	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// queryTallies loads tallies and their counts in one pass. where is either
// empty or a WHERE clause over alias t.
func queryTallies(q querier, where string, args []any) ([]*types.Tally, error) {
	query := `SELECT t.tally_id, t.consumer, t.created_at, c.item, c.count
FROM tallies t
LEFT JOIN tally_counts c ON c.tally_id = t.tally_id
` + where + `
ORDER BY t.created_at, t.tally_id, c.item`

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tallies: %w", err)
	}
	defer rows.Close()

	tallies := []*types.Tally{}
	var current *types.Tally
	for rows.Next() {
		var (
			id, consumer, createdAt string
			item                    sql.NullString
			count                   sql.NullInt64
		)
		if err := rows.Scan(&id, &consumer, &createdAt, &item, &count); err != nil {
			return nil, fmt.Errorf("scanning tally: %w", err)
		}

		if current == nil || current.TallyID != id {
			ts, err := time.Parse(timeLayout, createdAt)
			if err != nil {
				return nil, fmt.Errorf("parsing created_at of %s: %w", id, err)
			}
			current = &types.Tally{
				TallyID:   id,
				Consumer:  consumer,
				Counts:    map[string]int{},
				CreatedAt: ts,
			}
			tallies = append(tallies, current)
		}
		if item.Valid {
			current.Counts[item.String] = int(count.Int64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tallies: %w", err)
	}
	return tallies, nil
}
