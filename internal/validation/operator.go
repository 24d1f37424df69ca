package validation

import (
	"sort"
	"strings"
)

// allowedOperators, katı modda WHERE koşullarında kabul edilen operatörlerdir.
// Builder operatörü olduğu gibi yazar; bu liste yalnızca denetim içindir.
var allowedOperators = map[string]bool{
	// Karşılaştırma operatörleri
	"=":  true,
	"!=": true,
	"<>": true,
	"<":  true,
	">":  true,
	"<=": true,
	">=": true,

	// Desen eşleştirme operatörleri
	"LIKE":     true,
	"NOT LIKE": true,

	// NULL kontrolü operatörleri
	"IS":     true,
	"IS NOT": true,

	// MySQL NULL güvenli eşitliği
	"<=>": true,
}

// ValidateOperator, verilen operatörün izin verilen listede olup olmadığını kontrol eder.
// Karşılaştırma öncesinde büyük harfe çevrilir ve boşlukları kırpılır.
func ValidateOperator(op string) error {
	if !allowedOperators[normalize(op)] {
		return &OperatorError{
			Operator: op,
			Reason:   "operator not in allowed list (" + strings.Join(AllowedOperators(), ", ") + ")",
		}
	}
	return nil
}

// ValidateDirection, ORDER BY yönünün ASC veya DESC olduğunu kontrol eder.
func ValidateDirection(direction string) error {
	switch normalize(direction) {
	case "ASC", "DESC":
		return nil
	default:
		return &OperatorError{
			Operator: direction,
			Reason:   "direction must be ASC or DESC",
		}
	}
}

// AllowedOperators, izin verilen tüm operatörleri sıralı olarak döndürür.
func AllowedOperators() []string {
	ops := make([]string, 0, len(allowedOperators))
	for op := range allowedOperators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// OperatorError, operatör veya yön doğrulama hatasını temsil eder.
type OperatorError struct {
	Operator string
	Reason   string
}

// Error, error arayüzünü uygular.
func (e *OperatorError) Error() string {
	return "querybuilder: invalid operator '" + e.Operator + "': " + e.Reason
}
