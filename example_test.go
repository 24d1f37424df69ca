package querybuilder_test

import (
	"errors"
	"fmt"

	querybuilder "github.com/biyonik/go-query-builder"
	"github.com/biyonik/go-query-builder/dialect"
)

func ExampleNew() {
	sql := querybuilder.New("users").
		Select("id", "name").
		WhereCompare("age", ">", "18").
		OrWhere("name", "Bob").
		OrderBy("name", "ASC").
		Limit(10).
		ToSQL()

	fmt.Println(sql)
	// Output: SELECT `id`, `name` FROM users WHERE age > 18 OR name = 'Bob' ORDER BY name ASC LIMIT 10;
}

func ExampleQueryBuilder_OrWhereCompare() {
	fmt.Println(querybuilder.New("T").Where("b", "2").OrWhereCompare("a", "=", "1").ToSQL())
	fmt.Println(querybuilder.New("T").Where("b", "2").OrWhereCompareWithOr("a", "=", "1").ToSQL())
	// Output:
	// SELECT * FROM T WHERE b = 2 AND a = 1
	// SELECT * FROM T WHERE b = 2 OR a = 1
}

func ExampleWithGrammar() {
	sql := querybuilder.New("users", querybuilder.WithGrammar(dialect.Postgres())).
		Select("id").
		Limit(1).
		ToSQL()

	fmt.Println(sql)
	// Output: SELECT "id" FROM users  LIMIT 1;
}

func ExampleQueryBuilder_Build() {
	_, err := querybuilder.New("users", querybuilder.WithStrict(true)).
		WhereCompare("age", "===", "18").
		Build()

	fmt.Println(errors.Is(err, querybuilder.ErrInvalidOperator))
	// Output: true
}
