package querybuilder_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	querybuilder "github.com/biyonik/go-query-builder"
	"github.com/biyonik/go-query-builder/dialect"
)

// openUsers returns an in-memory database seeded with a small users table.
func openUsers(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to ":memory:" opens its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER NOT NULL, status TEXT NOT NULL)`,
		`INSERT INTO users (id, name, age, status) VALUES
			(1, 'Alice', 31, 'active'),
			(2, 'Bob', 17, 'active'),
			(3, 'Carol', 45, 'banned'),
			(4, 'Dave', 22, 'active'),
			(5, 'Eve', 12, 'pending')`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return db
}

func queryNames(t *testing.T, db *sql.DB, query string) []string {
	t.Helper()

	rows, err := db.QueryContext(context.Background(), query)
	require.NoError(t, err, query)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestSQLite_ExecutesGeneratedStatements(t *testing.T) {
	db := openUsers(t)

	tests := []struct {
		name  string
		build *querybuilder.QueryBuilder
		want  []string
	}{
		{
			name:  "backtick columns and limit terminator",
			build: querybuilder.New("users").Select("name").OrderByAsc("id").Limit(2),
			want:  []string{"Alice", "Bob"},
		},
		{
			name: "numeric and string literals",
			build: querybuilder.New("users").
				Select("name").
				WhereCompare("age", ">=", "18").
				Where("status", "active").
				OrderByAsc("name"),
			want: []string{"Alice", "Dave"},
		},
		{
			name: "or joiner",
			build: querybuilder.New("users").
				Select("name").
				Where("name", "Eve").
				OrWhere("name", "Carol").
				OrderByDesc("name"),
			want: []string{"Eve", "Carol"},
		},
		{
			name: "raw fragments",
			build: querybuilder.New("users").
				Select("name").
				WhereRaw("age BETWEEN 20 AND 40").
				OrWhereRaw("status = 'pending'").
				OrderByAsc("id"),
			want: []string{"Alice", "Dave", "Eve"},
		},
		{
			name:  "alias table with double quoted columns",
			build: querybuilder.New("users u", querybuilder.WithGrammar(dialect.Postgres())).Select("name").WhereCompare("u.age", "<", "15"),
			want:  []string{"Eve"},
		},
		{
			name:  "zero limit",
			build: querybuilder.New("users").Select("name").Limit(0),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryNames(t, db, tt.build.ToSQL()))
		})
	}
}

func TestSQLite_WildcardWithoutWhere(t *testing.T) {
	db := openUsers(t)

	rows, err := db.Query(querybuilder.New("users").ToSQL())
	require.NoError(t, err)
	defer rows.Close()

	cols, err := rows.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "age", "status"}, cols)

	count := 0
	for rows.Next() {
		count++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 5, count)
}
