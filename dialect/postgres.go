package dialect

// PostgresGrammar, Grammar arayüzünü PostgreSQL için implemente eder.
// Derleme hattı MySQL ile aynıdır; yalnızca Select kolonları çift tırnakla sarılır.
type PostgresGrammar struct {
	BaseGrammar
}

// Postgres, yeni bir PostgreSQL dilbilgisi örneği oluşturur.
func Postgres() *PostgresGrammar {
	return &PostgresGrammar{
		BaseGrammar: BaseGrammar{name: "postgres"},
	}
}

// WrapColumn, kolon adını çift tırnakla sarar.
//
// Örnek: "name" -> "\"name\""
func (g *PostgresGrammar) WrapColumn(column string) string {
	return `"` + column + `"`
}

// QuoteValue, değeri literal olarak biçimlendirir.
func (g *PostgresGrammar) QuoteValue(value string) string {
	return quoteValue(value)
}

// CompileSelect, SELECT ifadesini derler.
func (g *PostgresGrammar) CompileSelect(b QueryBuilder) string {
	return compileSelect(g, b)
}

// ByName, verilen ada karşılık gelen grameri döndürür.
// Tanınmayan adlar için ok false döner.
func ByName(name string) (g Grammar, ok bool) {
	switch name {
	case "mysql", "mariadb", "":
		return MySQL(), true
	case "postgres", "postgresql", "pgsql":
		return Postgres(), true
	default:
		return nil, false
	}
}
