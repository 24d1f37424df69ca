// Package querybuilder, Go dilinde akıcı bir arayüzle tek bir SELECT ifadesi
// oluşturmayı sağlayan bir kütüphanedir. Sorgu parçaları yapısal veri olarak
// biriktirilir ve ToSQL ile deterministik olarak tek bir SQL stringine çevrilir.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package querybuilder

import "github.com/biyonik/go-query-builder/dialect"

// Version, go-query-builder kütüphanesinin mevcut sürümünü belirtir.
const Version = "0.2.0"

// Table, New için okunabilir bir kısayoldur.
//
// Örnek:
//
//	sql := querybuilder.Table("users").
//	    Where("status", "active").
//	    ToSQL()
func Table(name string, opts ...Option) *QueryBuilder {
	return New(name, opts...)
}

// GrammarByName, ada göre bir gramer seçer. Tanınmayan adlarda ok false döner.
// "mysql" ve "postgres" (ve takma adları) desteklenir.
func GrammarByName(name string) (dialect.Grammar, bool) {
	return dialect.ByName(name)
}
