package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	nt "hrquery/entity"
)

// Todo: page List once there are more than a screenful of queries

// Config specifies how to reach the backing database.
// Driver is a registered database/sql driver name, "duckdb" or "sqlite".
type Config struct {
	Driver string `yaml:"driver"`
	Dsn    string `yaml:"dsn"`
	User   string `yaml:"user"`
}

// Store persists hr queries, reloading them by view and committing them with
// optimistic locking.
type Store struct {
	db     *sql.DB
	name   string
	user   string
	logger nt.Logger

	// Now is the clock stamped into audit columns
	Now func() time.Time
}

// New opens the database and makes sure the schema is in place.
func (cfg *Config) New(ctx context.Context, lgr nt.Logger) (st *Store, err error) {

	db, err := sql.Open(cfg.Driver, cfg.Dsn)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", cfg.Driver)
		return
	}
	// in-memory databases live and die with their connection
	db.SetMaxOpenConns(1)

	err = Migrate(ctx, db)
	if err != nil {
		db.Close()
		return
	}

	user := cfg.User
	if user == "" {
		user = "admin"
	}

	st = &Store{
		db:     db,
		name:   fmt.Sprintf("%s:%s", cfg.Driver, cfg.Dsn),
		user:   user,
		logger: lgr,
		Now:    time.Now,
	}

	lgr.Info(ctx, "store opened", "driver", cfg.Driver, "dsn", cfg.Dsn)
	return
}

// Close the underlying database.
func (st *Store) Close() {
	st.db.Close()
}

// Name returns the name of the data source
func (st *Store) Name() string {
	return st.name
}

// NewItem returns a transient record.
func (st *Store) NewItem() *nt.HrQuery {
	return nt.New()
}

// List non-deleted records, loaded with view, oldest first.
func (st *Store) List(ctx context.Context, view nt.View) (items []*nt.HrQuery, err error) {

	cols := columns(view)
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE delete_ts IS NULL ORDER BY create_ts, id",
		strings.Join(cols, ", "), table)

	rows, err := st.db.QueryContext(ctx, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query hr queries")
		return
	}
	defer rows.Close()

	items = []*nt.HrQuery{}
	for rows.Next() {
		var item *nt.HrQuery
		item, err = scanItem(rows, cols, view)
		if err != nil {
			return
		}
		items = append(items, item)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Get loads a record by id.
func (st *Store) Get(ctx context.Context, id uuid.UUID, view nt.View) (item *nt.HrQuery, err error) {
	return load(ctx, st.db, id, view)
}

// Reload returns a fresh copy of item, populated per view.
func (st *Store) Reload(ctx context.Context, item *nt.HrQuery, view nt.View) (*nt.HrQuery, error) {

	if item == nil {
		return nil, errors.New("cannot reload nil record")
	}
	return load(ctx, st.db, item.ID, view)
}

// Commit inserts a transient record or updates a persistent one, returning the
// stored copy. An update is refused with ConflictError when the stored version
// differs from the one held by item.
func (st *Store) Commit(ctx context.Context, item *nt.HrQuery) (committed *nt.HrQuery, err error) {

	if item == nil {
		err = errors.New("cannot commit nil record")
		return
	}

	now := micros(st.Now())

	err = st.inTx(ctx, func(tx *sql.Tx) (err error) {

		if item.IsNew() {
			_, err = tx.ExecContext(ctx, fmt.Sprintf(`
				INSERT INTO %s (id, version, create_ts, created_by, update_ts, updated_by, name)
				VALUES (?, 1, ?, ?, ?, ?, ?)
			`, table), item.ID.String(), now, st.user, now, st.user, item.Name)
			err = errors.Wrapf(err, "failed to insert hr query %s", item.ID)
			if err != nil {
				return
			}
		} else {
			var result sql.Result
			result, err = tx.ExecContext(ctx, fmt.Sprintf(`
				UPDATE %s
				SET name = ?, version = version + 1, update_ts = ?, updated_by = ?
				WHERE id = ? AND version = ? AND delete_ts IS NULL
			`, table), item.Name, now, st.user, item.ID.String(), item.Version)
			if err != nil {
				err = errors.Wrapf(err, "failed to update hr query %s", item.ID)
				return
			}

			err = checkAffected(ctx, tx, result, item)
			if err != nil {
				return
			}
		}

		committed, err = load(ctx, tx, item.ID, nt.LocalView)
		return
	})
	if err != nil {
		return
	}

	st.logger.Info(ctx, "committed hr query", "id", committed.ID, "version", committed.Version)
	return
}

// Remove soft deletes items in a single transaction.
func (st *Store) Remove(ctx context.Context, items []*nt.HrQuery) (err error) {

	now := micros(st.Now())

	err = st.inTx(ctx, func(tx *sql.Tx) (err error) {
		for _, item := range items {
			var result sql.Result
			result, err = tx.ExecContext(ctx, fmt.Sprintf(`
				UPDATE %s
				SET delete_ts = ?, deleted_by = ?, version = version + 1
				WHERE id = ? AND version = ? AND delete_ts IS NULL
			`, table), now, st.user, item.ID.String(), item.Version)
			if err != nil {
				err = errors.Wrapf(err, "failed to remove hr query %s", item.ID)
				return
			}

			err = checkAffected(ctx, tx, result, item)
			if err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return
	}

	st.logger.Info(ctx, "removed hr queries", "count", len(items))
	return
}

// unexported

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (st *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {

	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin transaction")
		return
	}

	err = fn(tx)
	if err != nil {
		tx.Rollback()
		return
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit transaction")
	return
}

// checkAffected tells a conflicting version from a missing record when a
// versioned statement touched nothing.
func checkAffected(ctx context.Context, qr queryer, result sql.Result, item *nt.HrQuery) (err error) {

	affected, err := result.RowsAffected()
	if err != nil {
		err = errors.Wrapf(err, "failed to get rows affected")
		return
	}
	if affected > 0 {
		return
	}

	var version int
	var deleteTs sql.NullInt64
	query := fmt.Sprintf("SELECT version, delete_ts FROM %s WHERE id = ?", table)

	err = qr.QueryRowContext(ctx, query, item.ID.String()).Scan(&version, &deleteTs)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && deleteTs.Valid) {
		return errors.Wrapf(nt.ErrNotFound, "hr query %s", item.ID)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to query version")
	}

	return &nt.ConflictError{
		ID:       item.ID.String(),
		Expected: item.Version,
		Stored:   version,
	}
}

func load(ctx context.Context, qr queryer, id uuid.UUID, view nt.View) (item *nt.HrQuery, err error) {

	cols := columns(view)
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ? AND delete_ts IS NULL",
		strings.Join(cols, ", "), table)

	item, err = scanItem(qr.QueryRowContext(ctx, query, id.String()), cols, view)
	if errors.Is(err, sql.ErrNoRows) {
		err = errors.Wrapf(nt.ErrNotFound, "hr query %s", id)
	}
	return
}
