// Package querydef, tek bir SELECT ifadesini YAML veya JSON olarak bildirimsel
// biçimde tanımlar ve bu tanımı bir querybuilder.QueryBuilder üzerine uygular.
//
// Her dosya tam olarak bir YAML dokümanı içerir. Örnek tanım:
//
//	table: users
//	select: [id, name]
//	where:
//	  - {column: age, operator: ">", value: 18}
//	  - {column: name, value: Bob, or: true}
//	  - {raw: "deleted_at IS NULL"}
//	order_by: {column: name, direction: ASC}
//	limit: 10
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
package querydef

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	querybuilder "github.com/biyonik/go-query-builder"
)

var (
	// ErrEmptyDefinition is returned when the input holds no document.
	ErrEmptyDefinition = errors.New("querydef: empty definition")

	// ErrInvalidDefinition is returned when a definition cannot describe a statement.
	ErrInvalidDefinition = errors.New("querydef: invalid definition")
)

// Definition is one statement.
type Definition struct {
	Table   string   `yaml:"table"`
	Select  []string `yaml:"select"`
	Where   []Step   `yaml:"where"`
	OrderBy *Order   `yaml:"order_by"`
	Limit   *int     `yaml:"limit"`
}

// Step is one WHERE condition. Exactly one of Raw and Column is set.
//
// The builder operation is picked from the step's shape:
//
//	raw             -> WhereRaw / OrWhereRaw
//	column, value   -> Where / OrWhere
//	column, op, val -> WhereCompare / OrWhereCompare (AND, even with or: true)
//	or_strict: true -> OrWhereCompareWithOr
type Step struct {
	Column   string `yaml:"column"`
	Operator string `yaml:"operator"`
	Value    string `yaml:"value"`
	Raw      string `yaml:"raw"`
	Or       bool   `yaml:"or"`
	OrStrict bool   `yaml:"or_strict"`
}

// Order is the ORDER BY column and direction.
type Order struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction"`
}

// Parse, tek dokümanlık bir YAML veya JSON tanımını çözümler.
// Bilinmeyen anahtarlar, tam sayı olmayan limit ve birden fazla doküman reddedilir.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, fmt.Errorf("querydef: decode: %w", err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, fmt.Errorf("%w: expected a single document", ErrInvalidDefinition)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("querydef: decode: %w", err)
	}

	if err := checkLimit(&doc); err != nil {
		return nil, err
	}

	def, err := decodeStrict(data)
	if err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// decodeStrict decodes the first document into a Definition, rejecting unknown keys.
func decodeStrict(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, fmt.Errorf("querydef: decode: %w", err)
	}
	return &def, nil
}

// checkLimit rejects a limit that is not an integer scalar. yaml.v3 would
// otherwise truncate 2.5 to 2.
func checkLimit(doc *yaml.Node) error {
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "limit" {
			continue
		}
		value := root.Content[i+1]
		switch value.ShortTag() {
		case "!!int", "!!null":
			return nil
		default:
			return fmt.Errorf("%w: limit must be an integer, got %q", ErrInvalidDefinition, value.Value)
		}
	}
	return nil
}

// Load, fs üzerindeki path dosyasını okur ve Parse ile çözümler.
func Load(fs afero.Fs, path string) (*Definition, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("querydef: read %s: %w", path, err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Validate, tanımın yapısını denetler. Tanımlayıcı ve operatör içerikleri
// builder'ın katı moduna bırakılır.
func (d *Definition) Validate() error {
	if d.Table == "" {
		return fmt.Errorf("%w: table is required", ErrInvalidDefinition)
	}

	for i, step := range d.Where {
		switch {
		case step.Raw != "" && step.Column != "":
			return fmt.Errorf("%w: where[%d]: raw and column are mutually exclusive", ErrInvalidDefinition, i)
		case step.Raw == "" && step.Column == "":
			return fmt.Errorf("%w: where[%d]: one of raw or column is required", ErrInvalidDefinition, i)
		case step.Raw != "" && (step.Operator != "" || step.Value != ""):
			return fmt.Errorf("%w: where[%d]: raw cannot have operator or value", ErrInvalidDefinition, i)
		case step.OrStrict && step.Operator == "":
			return fmt.Errorf("%w: where[%d]: or_strict requires an operator", ErrInvalidDefinition, i)
		}
	}

	if d.OrderBy != nil && d.OrderBy.Column == "" {
		return fmt.Errorf("%w: order_by.column is required", ErrInvalidDefinition)
	}

	return nil
}

// Builder, tanımı yeni bir QueryBuilder üzerine sırayla uygular.
// Boş select listesi "*" seçimini korur.
func (d *Definition) Builder(opts ...querybuilder.Option) *querybuilder.QueryBuilder {
	qb := querybuilder.New(d.Table, opts...)

	if len(d.Select) > 0 {
		qb.Select(d.Select...)
	}

	for _, step := range d.Where {
		step.apply(qb)
	}

	if d.OrderBy != nil {
		qb.OrderBy(d.OrderBy.Column, d.OrderBy.Direction)
	}

	if d.Limit != nil {
		qb.Limit(*d.Limit)
	}

	return qb
}

func (s Step) apply(qb *querybuilder.QueryBuilder) {
	switch {
	case s.Raw != "" && s.Or:
		qb.OrWhereRaw(s.Raw)
	case s.Raw != "":
		qb.WhereRaw(s.Raw)
	case s.OrStrict:
		qb.OrWhereCompareWithOr(s.Column, s.Operator, s.Value)
	case s.Operator != "" && s.Or:
		qb.OrWhereCompare(s.Column, s.Operator, s.Value)
	case s.Operator != "":
		qb.WhereCompare(s.Column, s.Operator, s.Value)
	case s.Or:
		qb.OrWhere(s.Column, s.Value)
	default:
		qb.Where(s.Column, s.Value)
	}
}
