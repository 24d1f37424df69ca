package validation

import "regexp"

// numericRegex, işaretli tam sayı ve ondalık literal'leri eşler; üs kısmı ve
// baştaki/sondaki boşluklar kabul edilir. "0x1A", "1_000", "NaN", "Inf" gibi
// biçimler sayısal sayılmaz.
var numericRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// IsNumeric, değerin tırnaksız yazılabilecek saf bir sayısal literal olup olmadığını döndürür.
func IsNumeric(value string) bool {
	return numericRegex.MatchString(value)
}
