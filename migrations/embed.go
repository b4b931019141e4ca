// Package migrations — SQL-миграции goose, вшитые в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
