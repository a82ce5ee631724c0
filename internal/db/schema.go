package db

import (
	_ "embed"
)

// Schema creates the tables the event sources read from and write to. It is
// idempotent and used to provision test databases.
//
//go:embed schema.sql
var Schema string
