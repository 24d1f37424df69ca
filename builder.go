package querybuilder

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/biyonik/go-query-builder/dialect"
	"github.com/biyonik/go-query-builder/internal/validation"
)

// NoLimit, limit ayarlanmamış builder'ın limit değeridir. Negatif her değer
// aynı anlama gelir.
const NoLimit = -1

// QueryBuilder, tek bir SELECT ifadesini akıcı bir arayüzle (fluent interface)
// biriktirip metne dönüştüren yapıdır.
//
// Her değiştirici metot aynı builder'ı döndürür; böylece çağrılar zincirlenebilir.
// ToSQL durumu değiştirmez ve istenildiği kadar çağrılabilir.
// QueryBuilder örnekleri **concurrent-safe** değildir; paralel kullanımlar için
// Clone() ile çoğaltılmalıdır.
//
// Genel kullanım örneği:
//
//	sql := querybuilder.New("users").
//	    Select("id", "name").
//	    WhereCompare("age", ">", "18").
//	    OrWhere("name", "Bob").
//	    OrderBy("name", "ASC").
//	    Limit(10).
//	    ToSQL()
//	// SELECT `id`, `name` FROM users WHERE age > 18 OR name = 'Bob' ORDER BY name ASC LIMIT 10;
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
type QueryBuilder struct {
	grammar dialect.Grammar
	logger  *slog.Logger
	strict  bool

	// Table name, set once by New
	table string

	// Selected columns; wildcard until Select is called
	columns  []string
	wildcard bool

	// Query clauses, append-only
	wheres []dialect.WhereClause

	// "<column> <direction>", empty when unset
	orderBy string

	// NoLimit when unset
	limit int

	// Strict mode violations
	errs []error
}

// New, verilen tablo için yeni bir QueryBuilder oluşturur.
// Kolonlar "*", koşul listesi boş, limit ve sıralama ayarlanmamış olarak başlar.
// Tablo adı doğrulanmaz; katı modda boş veya geçersiz ad hata olarak kaydedilir.
func New(table string, opts ...Option) *QueryBuilder {
	b := &QueryBuilder{
		grammar:  dialect.MySQL(),
		logger:   slog.New(slog.DiscardHandler),
		table:    table,
		columns:  []string{"*"},
		wildcard: true,
		wheres:   make([]dialect.WhereClause, 0),
		limit:    NoLimit,
	}

	applyOptions(b, opts)

	if b.strict {
		b.checkTable(table)
	}

	return b
}

// Where, "kolon = değer" koşulunu AND bağlacıyla ekler.
func (b *QueryBuilder) Where(column, value string) *QueryBuilder {
	return b.appendWhere(column, "=", value, dialect.WhereBooleanAnd)
}

// WhereCompare, "kolon operatör değer" koşulunu AND bağlacıyla ekler.
// Operatör olduğu gibi yazılır.
func (b *QueryBuilder) WhereCompare(column, operator, value string) *QueryBuilder {
	return b.appendWhere(column, operator, value, dialect.WhereBooleanAnd)
}

// OrWhere, "kolon = değer" koşulunu OR bağlacıyla ekler.
func (b *QueryBuilder) OrWhere(column, value string) *QueryBuilder {
	return b.appendWhere(column, "=", value, dialect.WhereBooleanOr)
}

// OrWhereCompare, "kolon operatör değer" koşulunu ekler.
//
// Dikkat: adına rağmen koşul AND bağlacıyla eklenir; OR yalnızca iki argümanlı
// OrWhere'de uygulanır. Mevcut çıktıları korumak için bu davranış değiştirilmez.
// OR ile bağlanan üç argümanlı koşul için OrWhereCompareWithOr kullanın.
func (b *QueryBuilder) OrWhereCompare(column, operator, value string) *QueryBuilder {
	return b.appendWhere(column, operator, value, dialect.WhereBooleanAnd)
}

// OrWhereCompareWithOr, "kolon operatör değer" koşulunu OR bağlacıyla ekler.
func (b *QueryBuilder) OrWhereCompareWithOr(column, operator, value string) *QueryBuilder {
	return b.appendWhere(column, operator, value, dialect.WhereBooleanOr)
}

// WhereRaw, ham SQL WHERE ifadesini AND bağlacıyla ekler.
// Dikkat: ifade kaçışlanmaz ve doğrulanmaz; güvenliği çağırana aittir.
func (b *QueryBuilder) WhereRaw(sqlExpr string) *QueryBuilder {
	b.wheres = append(b.wheres, dialect.RawWhere{
		SQL:    sqlExpr,
		Joiner: dialect.WhereBooleanAnd,
	})
	return b
}

// OrWhereRaw, ham SQL WHERE ifadesini OR bağlacıyla ekler.
func (b *QueryBuilder) OrWhereRaw(sqlExpr string) *QueryBuilder {
	b.wheres = append(b.wheres, dialect.RawWhere{
		SQL:    sqlExpr,
		Joiner: dialect.WhereBooleanOr,
	})
	return b
}

// Select, seçilecek kolon listesini tümüyle değiştirir. Her kolon gramerin
// tanımlayıcı tırnaklarıyla sarılır. Boş çağrı boş bir liste bırakır.
func (b *QueryBuilder) Select(columns ...string) *QueryBuilder {
	b.columns = make([]string, len(columns))
	copy(b.columns, columns)
	b.wildcard = false

	if b.strict {
		if len(columns) == 0 {
			b.record(NewValidationError("select", "", "at least one column is required", ErrEmptySelect))
		}
		for _, col := range columns {
			if err := validation.ValidateIdentifier(col); err != nil {
				b.record(fromValidation("column", col, err, ErrInvalidIdentifier))
			}
		}
	}

	return b
}

// Limit, LIMIT değerini ayarlar. Negatif değerler limiti kaldırır.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.limit = n
	return b
}

// OrderBy, ORDER BY değerini "kolon yön" olarak ayarlar; önceki değerin üzerine yazar.
// Yön doğrulanmaz.
func (b *QueryBuilder) OrderBy(column, direction string) *QueryBuilder {
	b.orderBy = column + " " + direction

	if b.strict {
		b.checkColumn("order column", column)
		if err := validation.ValidateDirection(direction); err != nil {
			b.record(fromValidation("order direction", direction, err, ErrInvalidDirection))
		}
	}

	return b
}

// OrderByAsc, artan sırada ORDER BY ayarlar.
func (b *QueryBuilder) OrderByAsc(column string) *QueryBuilder {
	return b.OrderBy(column, string(dialect.OrderAsc))
}

// OrderByDesc, azalan sırada ORDER BY ayarlar.
func (b *QueryBuilder) OrderByDesc(column string) *QueryBuilder {
	return b.OrderBy(column, string(dialect.OrderDesc))
}

// ToSQL, biriken durumu tek bir SELECT ifadesine dönüştürür.
// Durumu değiştirmez, hata üretmez ve aynı durum için her zaman aynı metni döndürür.
func (b *QueryBuilder) ToSQL() string {
	sql := b.grammar.CompileSelect(b)
	b.logger.Debug("compiled select",
		slog.String("grammar", b.grammar.Name()),
		slog.String("table", b.table),
		slog.String("sql", sql),
	)
	return sql
}

// String, ToSQL ile aynıdır; fmt.Stringer arayüzünü uygular.
func (b *QueryBuilder) String() string {
	return b.ToSQL()
}

// Build, ToSQL ile aynı metni katı modda biriken hatalarla birlikte döndürür.
// Katı mod kapalıyken hata her zaman nil'dir.
func (b *QueryBuilder) Build() (string, error) {
	return b.ToSQL(), b.Err()
}

// Err, katı modda biriken doğrulama hatalarını errors.Join ile birleştirerek döndürür.
func (b *QueryBuilder) Err() error {
	return errors.Join(b.errs...)
}

// Clone, builder'ın bağımsız bir kopyasını oluşturur.
func (b *QueryBuilder) Clone() *QueryBuilder {
	clone := &QueryBuilder{
		grammar:  b.grammar,
		logger:   b.logger,
		strict:   b.strict,
		table:    b.table,
		wildcard: b.wildcard,
		orderBy:  b.orderBy,
		limit:    b.limit,
	}

	clone.columns = make([]string, len(b.columns))
	copy(clone.columns, b.columns)

	clone.wheres = make([]dialect.WhereClause, len(b.wheres))
	copy(clone.wheres, b.wheres)

	if len(b.errs) > 0 {
		clone.errs = make([]error, len(b.errs))
		copy(clone.errs, b.errs)
	}

	return clone
}

// When, koşul doğruysa callback'i builder üzerinde çalıştırır.
func (b *QueryBuilder) When(condition bool, fn func(*QueryBuilder)) *QueryBuilder {
	if condition {
		fn(b)
	}
	return b
}

// Unless, When'in tersidir.
func (b *QueryBuilder) Unless(condition bool, fn func(*QueryBuilder)) *QueryBuilder {
	return b.When(!condition, fn)
}

// Grammar, builder'ın kullandığı grameri döndürür.
func (b *QueryBuilder) Grammar() dialect.Grammar {
	return b.grammar
}

// GetTable, tablo adını döndürür.
func (b *QueryBuilder) GetTable() string {
	return b.table
}

// GetColumns, Select ile verilen kolonların sarılmamış bir kopyasını döndürür.
func (b *QueryBuilder) GetColumns() []string {
	return slices.Clone(b.columns)
}

// IsWildcard, Select henüz çağrılmadıysa true döner.
func (b *QueryBuilder) IsWildcard() bool {
	return b.wildcard
}

// GetWheres, WHERE koşullarının eklenme sırasıyla bir kopyasını döndürür.
// Kopya üzerindeki değişiklikler builder'ı etkilemez.
func (b *QueryBuilder) GetWheres() []dialect.WhereClause {
	return slices.Clone(b.wheres)
}

// GetOrderBy, ORDER BY değerini döndürür.
func (b *QueryBuilder) GetOrderBy() string {
	return b.orderBy
}

// GetLimit, LIMIT değerini döndürür; ayarlanmadıysa NoLimit.
func (b *QueryBuilder) GetLimit() int {
	return b.limit
}

func (b *QueryBuilder) appendWhere(column, operator, value string, boolean dialect.WhereBoolean) *QueryBuilder {
	b.wheres = append(b.wheres, dialect.BasicWhere{
		Column:   column,
		Operator: operator,
		Value:    value,
		Joiner:   boolean,
	})

	if b.strict {
		b.checkColumn("where column", column)
		if err := validation.ValidateOperator(operator); err != nil {
			b.record(fromValidation("operator", operator, err, ErrInvalidOperator))
		}
	}

	return b
}

func (b *QueryBuilder) checkTable(table string) {
	if table == "" {
		b.record(NewValidationError("table", table, "table name cannot be empty", ErrNoTable))
		return
	}
	if err := validation.ValidateTable(table); err != nil {
		b.record(fromValidation("table", table, err, ErrInvalidIdentifier))
	}
}

func (b *QueryBuilder) checkColumn(context, column string) {
	if err := validation.ValidateColumn(column); err != nil {
		b.record(fromValidation(context, column, err, ErrInvalidIdentifier))
	}
}

func (b *QueryBuilder) record(err error) {
	b.errs = append(b.errs, err)
}

var _ dialect.QueryBuilder = (*QueryBuilder)(nil)
