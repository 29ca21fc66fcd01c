package db

import _ "embed"

// Schema is the full DDL for the Folio database, applied by cmd/migrate.
//
//go:embed schema.sql
var Schema string
