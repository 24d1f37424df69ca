// Package validation, katı (strict) modda tablo, kolon, operatör ve sıralama yönü
// girdilerini denetleyen dahili yardımcıları ve değer biçimlendirmede kullanılan
// sayısal literal algılayıcısını içerir.
//
// Doğrulama hiçbir zaman üretilen SQL metnini değiştirmez; yalnızca hata döndürür.
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
package validation

import (
	"regexp"
	"strings"
)

// maxIdentifierLength, MySQL'in tanımlayıcı uzunluk sınırının üstünde güvenli bir tavandır.
const maxIdentifierLength = 128

// identifierRegex, tablo ve kolon adlarını doğrular. İlk karakter harf veya alt
// çizgi olmalıdır; tek bir nokta table.column referansına izin verir.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// aliasRegex, "table as alias" veya "table alias" formatlarını eşler.
var aliasRegex = regexp.MustCompile(`(?i)^([a-zA-Z_][a-zA-Z0-9_]*)\s+(?:as\s+)?([a-zA-Z_][a-zA-Z0-9_]*)$`)

// reservedWords, tırnaksız kullanıldığında ifadeyi bozan SQL anahtar kelimeleridir.
// WHERE ve ORDER BY kolonları sarılmadığı için katı mod bunları reddeder.
var reservedWords = map[string]bool{
	"select": true, "from": true, "where": true, "and": true, "or": true,
	"insert": true, "update": true, "delete": true, "into": true, "values": true,
	"set": true, "order": true, "by": true, "asc": true, "desc": true,
	"limit": true, "offset": true, "join": true, "left": true, "right": true,
	"inner": true, "outer": true, "on": true, "as": true, "in": true,
	"between": true, "like": true, "is": true, "null": true, "not": true,
	"group": true, "having": true, "distinct": true, "union": true,
	"create": true, "drop": true, "alter": true, "table": true, "index": true,
	"primary": true, "key": true, "foreign": true, "references": true,
	"default": true, "constraint": true, "unique": true, "check": true,
}

// ValidateIdentifier, verilen adın geçerli bir SQL tanımlayıcısı olup olmadığını kontrol eder.
func ValidateIdentifier(id string) error {
	if id == "" {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier cannot be empty",
		}
	}

	if len(id) > maxIdentifierLength {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier exceeds maximum length of 128 characters",
		}
	}

	if !identifierRegex.MatchString(id) {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier contains invalid characters; only letters, numbers, underscores, and dots are allowed",
		}
	}

	return nil
}

// ValidateTable, FROM'a olduğu gibi yazılacak tablo referansını doğrular.
// Desteklenen formatlar: "table", "table alias", "table as alias".
func ValidateTable(table string) error {
	if strings.TrimSpace(table) == "" {
		return &IdentifierError{
			Identifier: table,
			Reason:     "table name cannot be empty",
		}
	}

	if matches := aliasRegex.FindStringSubmatch(table); matches != nil {
		if err := ValidateIdentifier(matches[1]); err != nil {
			return err
		}
		if err := ValidateIdentifier(matches[2]); err != nil {
			return &IdentifierError{
				Identifier: matches[2],
				Reason:     "invalid alias: " + err.(*IdentifierError).Reason,
			}
		}
		return nil
	}

	return ValidateIdentifier(table)
}

// ValidateColumn, tırnaksız yazılacak bir kolon referansını doğrular.
// Rezerve kelimeler reddedilir.
func ValidateColumn(column string) error {
	if err := ValidateIdentifier(column); err != nil {
		return err
	}

	for _, part := range strings.Split(column, ".") {
		if IsReservedWord(part) {
			return &IdentifierError{
				Identifier: column,
				Reason:     "'" + part + "' is a reserved word and is rendered unquoted",
			}
		}
	}

	return nil
}

// IsReservedWord, verilen tanımlayıcının SQL rezerv kelimesi olup olmadığını kontrol eder.
func IsReservedWord(id string) bool {
	return reservedWords[strings.ToLower(id)]
}

// IdentifierError, tanımlayıcı doğrulama hatalarını temsil eder.
type IdentifierError struct {
	Identifier string
	Reason     string
}

// Error, error arayüzünü uygular.
func (e *IdentifierError) Error() string {
	if e.Identifier == "" {
		return "querybuilder: invalid identifier: " + e.Reason
	}
	return "querybuilder: invalid identifier '" + e.Identifier + "': " + e.Reason
}
