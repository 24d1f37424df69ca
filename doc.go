// Package querybuilder provides a fluent SELECT statement builder for Go.
//
// A QueryBuilder accumulates the pieces of one statement (selected columns,
// WHERE conditions, ordering, limit) and renders them, in that fixed order,
// into a single literal SQL string. Nothing is executed and no placeholders
// are produced.
//
// # Quick Start
//
//	sql := querybuilder.New("users").
//	    Select("id", "name").
//	    WhereCompare("age", ">", "18").
//	    OrWhere("name", "Bob").
//	    OrderBy("name", "ASC").
//	    Limit(10).
//	    ToSQL()
//
//	// SELECT `id`, `name` FROM users WHERE age > 18 OR name = 'Bob' ORDER BY name ASC LIMIT 10;
//
// # Where Clauses
//
//	qb.Where("age", "18")                  // age = 18
//	qb.WhereCompare("age", ">=", "18")     // AND age >= 18
//	qb.OrWhere("name", "Bob")              // OR name = 'Bob'
//	qb.OrWhereCompare("age", "<", "65")    // AND age < 65 (see below)
//	qb.OrWhereCompareWithOr("age", "<", "65") // OR age < 65
//	qb.WhereRaw("deleted_at IS NULL")      // AND deleted_at IS NULL
//	qb.OrWhereRaw("role IN ('admin')")     // OR role IN ('admin')
//
// OrWhereCompare joins its condition with AND. Only the two-argument OrWhere
// uses OR. Existing statements depend on this, so it is kept; use
// OrWhereCompareWithOr for a three-argument OR condition.
//
// Values that look like numbers (42, -3.14, 1e3) are written unquoted, every
// other value is wrapped in single quotes. Quotes inside values are NOT
// escaped, and raw fragments are written verbatim: never pass untrusted input.
//
// # Statement Shape
//
//	SELECT <cols> FROM <table> [WHERE ...][ ORDER BY <col> <dir>][ LIMIT <n>;]
//
// The FROM part always keeps a trailing space, and the terminating semicolon
// is only written together with a LIMIT.
//
// # Strict Mode
//
// WithStrict(true) validates every input and collects violations; Err and
// Build report them. The rendered text is the same with or without strict mode.
//
// # Thread Safety
//
// QueryBuilder instances are NOT thread-safe. Create a new instance per
// goroutine or use Clone.
//
// # Supported Databases
//
//   - MySQL / MariaDB (default, backtick identifiers)
//   - PostgreSQL (double-quoted identifiers)
package querybuilder
