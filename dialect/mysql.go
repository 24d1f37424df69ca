package dialect

import (
	"strconv"
	"strings"

	"github.com/biyonik/go-query-builder/internal/validation"
)

/*
 * ----------------------------------------------------------------------------
 * MYSQL GRAMMAR IMPLEMENTATION
 * ----------------------------------------------------------------------------
 *
 * Bu dosya, biriken sorgu durumunu (tablo, kolonlar, WHERE koşulları, sıralama,
 * limit) tek bir MySQL SELECT ifadesine dönüştürür.
 *
 * Parçalar her zaman aynı sırayla yazılır:
 *   SELECT -> FROM -> WHERE -> ORDER BY -> LIMIT
 *
 * Değerler parametre olarak değil, literal olarak gömülür. Sayısal görünen
 * değerler tırnaksız, diğerleri tek tırnak içinde yazılır; içerideki tırnaklar
 * kaçışlanmaz.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// MySQLGrammar, Grammar arayüzünü MySQL ve MariaDB için implemente eder.
// Select kolonlarını backtick (`) ile sarar.
type MySQLGrammar struct {
	BaseGrammar
}

// MySQL, yeni bir MySQL dilbilgisi örneği oluşturur. Builder'ın varsayılan grameridir.
func MySQL() *MySQLGrammar {
	return &MySQLGrammar{
		BaseGrammar: BaseGrammar{name: "mysql"},
	}
}

// NewMySQLGrammar, MySQL() için bir takma addır.
func NewMySQLGrammar() *MySQLGrammar {
	return MySQL()
}

// WrapColumn, kolon adını backtick ile sarar.
//
// Örnek: "name" -> "`name`"
func (g *MySQLGrammar) WrapColumn(column string) string {
	return "`" + column + "`"
}

// QuoteValue, değeri literal olarak biçimlendirir.
func (g *MySQLGrammar) QuoteValue(value string) string {
	return quoteValue(value)
}

// CompileSelect, SELECT ifadesini parçalarından birleştirerek inşa eder.
func (g *MySQLGrammar) CompileSelect(b QueryBuilder) string {
	return compileSelect(g, b)
}

// quoteValue, sayısal literal olmayan değerleri tek tırnağa alır.
func quoteValue(value string) string {
	if validation.IsNumeric(value) {
		return value
	}
	return "'" + value + "'"
}

// compileSelect, tüm gramerlerin paylaştığı derleme hattıdır. Yalnızca
// kolon sarma ve değer biçimlendirme gramere bırakılır.
func compileSelect(g Grammar, b QueryBuilder) string {
	var sql strings.Builder

	// SELECT
	sql.WriteString("SELECT ")
	if b.IsWildcard() {
		sql.WriteString("*")
	} else {
		columns := b.GetColumns()
		wrapped := make([]string, len(columns))
		for i, col := range columns {
			wrapped[i] = g.WrapColumn(col)
		}
		sql.WriteString(strings.Join(wrapped, ", "))
	}

	// FROM; tablo adı sarılmaz ve sonda bir boşluk kalır
	sql.WriteString(" FROM ")
	sql.WriteString(b.GetTable())
	sql.WriteString(" ")

	// WHERE
	if wheres := b.GetWheres(); len(wheres) > 0 {
		sql.WriteString("WHERE ")
		sql.WriteString(compileWheres(g, wheres))
	}

	// ORDER BY
	if order := b.GetOrderBy(); order != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(order)
	}

	// LIMIT; ifade sonlandırıcı ';' yalnızca burada eklenir
	if limit := b.GetLimit(); limit >= 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(limit))
		sql.WriteString(";")
	}

	return sql.String()
}

// compileWheres, koşulları eklenme sırasıyla yazar. Her koşul, kendi
// bağlacıyla bir öncekine bağlanır.
func compileWheres(g Grammar, wheres []WhereClause) string {
	var sql strings.Builder

	for i, where := range wheres {
		if i > 0 {
			sql.WriteString(" ")
			sql.WriteString(where.Boolean().String())
			sql.WriteString(" ")
		}
		sql.WriteString(compileWhere(g, where))
	}

	return sql.String()
}

// compileWhere, tek bir koşulun gövdesini üretir.
func compileWhere(g Grammar, where WhereClause) string {
	switch w := where.(type) {
	case RawWhere:
		return w.SQL
	case BasicWhere:
		return w.Column + " " + w.Operator + " " + g.QuoteValue(w.Value)
	default:
		panic("dialect: unknown where clause type")
	}
}
