// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// DBClientInterface hands out single-statement builders. The document
// tree deliberately exposes no multi-statement transaction: every
// engine write is one row, and multi-record mutations are ordered
// sequences of idempotent single-row writes.
type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	Ping(context.Context) error
	Close()
}
