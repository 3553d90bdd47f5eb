// Package store is the persistence gateway: generic single-table
// insert/select/update/delete against the relational store.
package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Like is a case-insensitive substring match on a single column.
type Like struct {
	Column    string
	Substring string
}

// Filters narrows a statement to matching rows. Eq entries become
// "col = ?" clauses; at most one Like is supported per statement.
type Filters struct {
	Eq      map[string]interface{}
	Like    *Like
	OrderBy string
}

// Gateway issues generic statements against the store. Statements are
// written with "?" placeholders and rebound for the active driver, so
// the same gateway runs on sqlite3 and postgres. Driver errors are
// returned to the caller, and row counts are reported separately, so
// "zero rows matched" and "statement failed" stay distinguishable.
type Gateway struct {
	db *sqlx.DB
}

func NewGateway(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

// sortedKeys keeps generated SQL deterministic across map iterations.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f Filters) whereClause() (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, col := range sortedKeys(f.Eq) {
		parts = append(parts, col+" = ?")
		args = append(args, f.Eq[col])
	}
	if f.Like != nil {
		parts = append(parts, "LOWER("+f.Like.Column+") LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Like.Substring)+"%")
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// Insert adds one row and returns the store-assigned id for idColumn.
// Pass an empty idColumn for tables without their own identifier; the
// row count is returned instead.
func (g *Gateway) Insert(table, idColumn string, record map[string]interface{}) (int64, error) {
	if len(record) == 0 {
		return 0, fmt.Errorf("insert into %s: empty record", table)
	}
	cols := sortedKeys(record)
	placeholders := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = record[col]
	}
	query := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") +
		") VALUES (" + strings.Join(placeholders, ", ") + ")"

	// lib/pq does not support LastInsertId; ask for the id instead.
	if idColumn != "" && g.db.DriverName() == "postgres" {
		var id int64
		if err := g.db.Get(&id, g.db.Rebind(query+" RETURNING "+idColumn), args...); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := g.db.Exec(g.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	if idColumn == "" {
		return result.RowsAffected()
	}
	return result.LastInsertId()
}

// Select scans all matching rows into dest, which must be a pointer to
// a slice of a db-tagged struct.
func (g *Gateway) Select(dest interface{}, table string, f Filters) error {
	where, args := f.whereClause()
	query := "SELECT * FROM " + table + where
	if f.OrderBy != "" {
		query += " ORDER BY " + f.OrderBy
	}
	return g.db.Select(dest, g.db.Rebind(query), args...)
}

// Update applies patch to matching rows and returns the count affected.
func (g *Gateway) Update(table string, f Filters, patch map[string]interface{}) (int64, error) {
	if len(patch) == 0 {
		return 0, fmt.Errorf("update %s: empty patch", table)
	}
	cols := sortedKeys(patch)
	set := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, col := range cols {
		set[i] = col + " = ?"
		args = append(args, patch[col])
	}
	where, whereArgs := f.whereClause()
	query := "UPDATE " + table + " SET " + strings.Join(set, ", ") + where
	result, err := g.db.Exec(g.db.Rebind(query), append(args, whereArgs...)...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Delete removes matching rows and returns the count affected.
func (g *Gateway) Delete(table string, f Filters) (int64, error) {
	where, args := f.whereClause()
	result, err := g.db.Exec(g.db.Rebind("DELETE FROM "+table+where), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
