// Package dialect, SELECT ifadelerinin metne dönüştürülmesinden sorumlu
// dilbilgisi (grammar) implementasyonlarını ve WHERE koşullarının veri modelini içerir.
// Ana paket sorgu parçalarını biriktirir; bu paket onları tek bir SQL stringine çevirir.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package dialect

// ----------------------------------------------------------------------------
// QueryBuilder Interface (import döngüsünü kırmak için)
// ----------------------------------------------------------------------------

// QueryBuilder, Grammar implementasyonlarının okuduğu salt-okunur arayüzdür.
// Ana paket ile dialect paketi arasındaki import döngüsünü kırmak için kullanılır.
type QueryBuilder interface {
	GetTable() string
	GetColumns() []string
	IsWildcard() bool
	GetWheres() []WhereClause
	GetOrderBy() string
	GetLimit() int
}

// ----------------------------------------------------------------------------
// Grammar Interface
// ----------------------------------------------------------------------------

// Grammar, biriken sorgu durumunu veritabanına özgü SQL metnine çevirir.
type Grammar interface {
	// Name, gramerin kimliğini döndürür (örn. "mysql", "postgres").
	Name() string

	// WrapColumn, Select ile verilen kolon adını tanımlayıcı tırnaklarıyla sarar.
	// İçerideki tırnak karakterleri kaçışlanmaz.
	WrapColumn(column string) string

	// QuoteValue, bir WHERE değerini literal olarak biçimlendirir:
	// sayısal değerler olduğu gibi, diğerleri tek tırnak içinde döner.
	QuoteValue(value string) string

	// CompileSelect, SELECT ifadesini derler. Hata üretmez ve durumu değiştirmez.
	CompileSelect(b QueryBuilder) string
}

// ----------------------------------------------------------------------------
// Base Grammar (ortak fonksiyonlar)
// ----------------------------------------------------------------------------

// BaseGrammar, tüm gramer implementasyonları için ortak fonksiyonellik sağlar.
type BaseGrammar struct {
	name string
}

// Name, gramerin adını döndürür.
func (g *BaseGrammar) Name() string {
	return g.name
}

// ----------------------------------------------------------------------------
// WHERE Clause Types
// ----------------------------------------------------------------------------

// WhereBoolean, bir koşulu kendinden önceki koşula bağlayan AND veya OR bağlacıdır.
type WhereBoolean int

const (
	WhereBooleanAnd WhereBoolean = iota
	WhereBooleanOr
)

// String, SQL için boolean kelimesini döndürür.
func (b WhereBoolean) String() string {
	if b == WhereBooleanOr {
		return "OR"
	}
	return "AND"
}

// WhereClause, tek bir WHERE koşulunu temsil eder. Yalnızca BasicWhere ve
// RawWhere bu arayüzü uygular; gramerler iki durumu type switch ile ayırır.
type WhereClause interface {
	// Boolean, koşulu bir öncekine bağlayan bağlacı döndürür.
	// İlk koşulun bağlacı saklanır ama hiçbir zaman yazılmaz.
	Boolean() WhereBoolean

	whereClause()
}

// BasicWhere, "kolon operatör değer" biçimindeki yapısal koşuldur.
type BasicWhere struct {
	Column   string
	Operator string
	Value    string
	Joiner   WhereBoolean
}

// Boolean, WhereClause arayüzünü uygular.
func (w BasicWhere) Boolean() WhereBoolean { return w.Joiner }

func (BasicWhere) whereClause() {}

// RawWhere, olduğu gibi yazılan ham SQL parçasıdır. Hiçbir kaçış uygulanmaz.
type RawWhere struct {
	SQL    string
	Joiner WhereBoolean
}

// Boolean, WhereClause arayüzünü uygular.
func (w RawWhere) Boolean() WhereBoolean { return w.Joiner }

func (RawWhere) whereClause() {}

// ----------------------------------------------------------------------------
// ORDER BY Types
// ----------------------------------------------------------------------------

// OrderDirection, sıralama yönünü belirtir.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// IsValid, yönün geçerli olup olmadığını kontrol eder.
func (d OrderDirection) IsValid() bool {
	return d == OrderAsc || d == OrderDesc
}
