package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	nt "hrquery/entity"
)

const table = "hcm_hr_query"

// timestamps are stored as unix microseconds, the one time encoding duckdb and
// sqlite agree on
const createTable = `
	CREATE TABLE IF NOT EXISTS hcm_hr_query (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		version INTEGER NOT NULL,
		create_ts BIGINT,
		created_by VARCHAR(50),
		update_ts BIGINT,
		updated_by VARCHAR(50),
		delete_ts BIGINT,
		deleted_by VARCHAR(50),
		name VARCHAR(255)
	)
`

// Migrate creates the schema if absent.
func Migrate(ctx context.Context, db *sql.DB) (err error) {

	_, err = db.ExecContext(ctx, createTable)
	err = errors.Wrapf(err, "failed to create table")
	return
}

// columnByProp maps view properties to columns
var columnByProp = map[string]string{
	nt.NameProp:      "name",
	nt.CreateTsProp:  "create_ts",
	nt.CreatedByProp: "created_by",
	nt.UpdateTsProp:  "update_ts",
	nt.UpdatedByProp: "updated_by",
}

// columns returns the columns to select for view, id and version first.
func columns(view nt.View) []string {

	cols := []string{"id", "version"}
	for _, prop := range view.Properties {
		col, ok := columnByProp[prop]
		if ok {
			cols = append(cols, col)
		}
	}
	return cols
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner, cols []string, view nt.View) (item *nt.HrQuery, err error) {

	var (
		id        string
		version   int
		name      sql.NullString
		createTs  sql.NullInt64
		createdBy sql.NullString
		updateTs  sql.NullInt64
		updatedBy sql.NullString
	)

	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &id
		case "version":
			dest[i] = &version
		case "name":
			dest[i] = &name
		case "create_ts":
			dest[i] = &createTs
		case "created_by":
			dest[i] = &createdBy
		case "update_ts":
			dest[i] = &updateTs
		case "updated_by":
			dest[i] = &updatedBy
		}
	}

	err = row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to scan hr query")
		return
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse id %q", id)
		return
	}

	item = &nt.HrQuery{
		ID:         uid,
		Version:    version,
		Name:       name.String,
		CreateTs:   fromMicros(createTs),
		CreatedBy:  createdBy.String,
		UpdateTs:   fromMicros(updateTs),
		UpdatedBy:  updatedBy.String,
		LoadedWith: view.Name,
	}
	return
}

func micros(ts time.Time) sql.NullInt64 {
	if ts.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: ts.UnixMicro(), Valid: true}
}

func fromMicros(ts sql.NullInt64) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return time.UnixMicro(ts.Int64).UTC()
}
