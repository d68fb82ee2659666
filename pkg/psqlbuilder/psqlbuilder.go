// Package psqlbuilder provides squirrel builders preconfigured for PostgreSQL placeholders.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT запрос с плейсхолдерами $1, $2, ...
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
