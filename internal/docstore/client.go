// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/classroom-service/internal/db"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/tracing"
)

var _ ClientInterface = (*Client)(nil)

// Client stores the document tree in the documents table, one row per
// path. All writes are single-row statements.
type Client struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewClient(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	s := new(Client)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	ctx, span := c.tracer.Start(ctx, "docstore.Client.Get")
	defer span.End()

	var body []byte
	err := c.db.Statement(ctx).
		Select("body").
		From("documents").
		Where(sq.Eq{"path": path}).
		QueryRowContext(ctx).
		Scan(&body)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoDocument
		}
		if isUnreachable(err) {
			return fmt.Errorf("get %s: %w", path, ErrUnavailable)
		}
		return fmt.Errorf("failed to get document %s: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", path, err)
	}

	return nil
}

func (c *Client) Put(ctx context.Context, path string, doc any) error {
	ctx, span := c.tracer.Start(ctx, "docstore.Client.Put")
	defer span.End()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", path, err)
	}

	now := time.Now().UTC()
	_, err = c.db.Statement(ctx).
		Insert("documents").
		Columns("path", "body", "created_at", "updated_at").
		Values(path, body, now, now).
		Suffix("ON CONFLICT (path) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ExecContext(ctx)

	if err != nil {
		if isUnreachable(err) {
			return fmt.Errorf("put %s: %w", path, ErrUnavailable)
		}
		return fmt.Errorf("failed to put document %s: %w", path, err)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	ctx, span := c.tracer.Start(ctx, "docstore.Client.Delete")
	defer span.End()

	_, err := c.db.Statement(ctx).
		Delete("documents").
		Where(sq.Eq{"path": path}).
		ExecContext(ctx)

	if err != nil {
		if isUnreachable(err) {
			return fmt.Errorf("delete %s: %w", path, ErrUnavailable)
		}
		return fmt.Errorf("failed to delete document %s: %w", path, err)
	}

	return nil
}

func (c *Client) Exists(ctx context.Context, path string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "docstore.Client.Exists")
	defer span.End()

	var found bool
	err := c.db.Statement(ctx).
		Select("TRUE").
		From("documents").
		Where(sq.Eq{"path": path}).
		QueryRowContext(ctx).
		Scan(&found)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if isUnreachable(err) {
			return false, fmt.Errorf("exists %s: %w", path, ErrUnavailable)
		}
		return false, fmt.Errorf("failed to check document %s: %w", path, err)
	}

	return found, nil
}

func (c *Client) List(ctx context.Context, path string) ([]Document, error) {
	ctx, span := c.tracer.Start(ctx, "docstore.Client.List")
	defer span.End()

	prefix := strings.TrimSuffix(path, "/") + "/"

	rows, err := c.db.Statement(ctx).
		Select("path", "body").
		From("documents").
		Where(sq.Like{"path": likeEscape(prefix) + "%"}).
		OrderBy("path").
		QueryContext(ctx)

	if err != nil {
		if isUnreachable(err) {
			return nil, fmt.Errorf("list %s: %w", path, ErrUnavailable)
		}
		return nil, fmt.Errorf("failed to list documents under %s: %w", path, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Path, &d.Body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		// direct children only, grandchildren live under their own parent
		if strings.Contains(strings.TrimPrefix(d.Path, prefix), "/") {
			continue
		}
		docs = append(docs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
