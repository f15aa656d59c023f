// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package docstore

import (
	"context"
)

// Document is one node of the tree, addressed by its full path.
type Document struct {
	Path string
	Body []byte
}

// ClientInterface is the path-addressed document tree the engine reads
// and writes. Every call touches exactly one path, except List which
// reads the direct children of a path. There are no cross-path
// transactions; callers sequence multi-record mutations themselves.
type ClientInterface interface {
	// Get unmarshals the document at path into out. ErrNoDocument when absent.
	Get(ctx context.Context, path string, out any) error
	// Put upserts the document at path.
	Put(ctx context.Context, path string, doc any) error
	// Delete removes the document at path. Deleting an absent path is a no-op.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a document is present at path.
	Exists(ctx context.Context, path string) (bool, error)
	// List returns the direct children of path, ordered by path.
	List(ctx context.Context, path string) ([]Document, error)
}
