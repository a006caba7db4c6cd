//go:build tools

package tools

// Tool dependencies pinned in go.mod. oapi-codegen regenerates
// internal/api/api.gen.go; the goose CLI runs the SQL files in
// internal/adapters/postgres/migrations outside the server process.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
