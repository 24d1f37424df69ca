package querybuilder

import (
	"log/slog"

	"github.com/biyonik/go-query-builder/dialect"
)

// -----------------------------------------------------------------------------
//  Bu dosya, QueryBuilder'ın yapılandırma katmanını oluşturan Option
//  fonksiyonlarını içerir. Her With* fonksiyonu New çağrısına eklenir ve
//  builder oluşturulurken sırayla uygulanır.
//
//  -- @author   Ahmet ALTUN
//  -- @github   github.com/biyonik
//  -- @linkedin linkedin.com/in/biyonik
//  -- @email    ahmet.altun60@gmail.com
// -----------------------------------------------------------------------------

// Option, bir QueryBuilder örneği üzerinde çalışan yapılandırma fonksiyonudur.
type Option func(*QueryBuilder)

// WithGrammar, ToSQL'in kullanacağı SQL gramerini değiştirir.
// Varsayılan olarak dialect.MySQL() kullanılır. nil verilirse varsayılan korunur.
//
// Örnek:
//
//	qb := querybuilder.New("users", querybuilder.WithGrammar(dialect.Postgres()))
func WithGrammar(g dialect.Grammar) Option {
	return func(b *QueryBuilder) {
		if g != nil {
			b.grammar = g
		}
	}
}

// WithLogger, derlenen her ifadeyi Debug seviyesinde kaydeden bir logger ekler.
// Varsayılan logger tüm kayıtları yutar.
//
// Örnek:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	qb := querybuilder.New("users", querybuilder.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(b *QueryBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStrict, katı modu açar veya kapatır. Katı modda her çağrının girdisi
// doğrulanır ve hatalar builder üzerinde biriktirilir; Err ve Build bu
// hataları döndürür. Üretilen SQL metni hiçbir durumda değişmez.
func WithStrict(strict bool) Option {
	return func(b *QueryBuilder) {
		b.strict = strict
	}
}

// applyOptions, verilen Option'ları sırayla builder üzerine uygular.
func applyOptions(b *QueryBuilder, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
}
