// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var _ ClientInterface = (*InMemoryClient)(nil)

// InMemoryClient keeps the document tree in a map. It backs unit tests
// and local development; semantics match the postgres client, including
// the single-path write granularity.
type InMemoryClient struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// FailPut, when set, makes Put return the given error for the
	// matching path once. Tests use it to simulate partial writes.
	failMu   sync.Mutex
	failPath string
	failErr  error
}

func NewInMemoryClient() *InMemoryClient {
	return &InMemoryClient{
		docs: make(map[string][]byte),
	}
}

// FailNextPut arranges for the next Put on path to fail with err.
func (c *InMemoryClient) FailNextPut(path string, err error) {
	c.failMu.Lock()
	defer c.failMu.Unlock()
	c.failPath = path
	c.failErr = err
}

func (c *InMemoryClient) Get(ctx context.Context, path string, out any) error {
	c.mu.RLock()
	body, ok := c.docs[path]
	c.mu.RUnlock()

	if !ok {
		return ErrNoDocument
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", path, err)
	}
	return nil
}

func (c *InMemoryClient) Put(ctx context.Context, path string, doc any) error {
	c.failMu.Lock()
	if c.failErr != nil && c.failPath == path {
		err := c.failErr
		c.failErr = nil
		c.failMu.Unlock()
		return err
	}
	c.failMu.Unlock()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", path, err)
	}

	c.mu.Lock()
	c.docs[path] = body
	c.mu.Unlock()
	return nil
}

func (c *InMemoryClient) Delete(ctx context.Context, path string) error {
	c.mu.Lock()
	delete(c.docs, path)
	c.mu.Unlock()
	return nil
}

func (c *InMemoryClient) Exists(ctx context.Context, path string) (bool, error) {
	c.mu.RLock()
	_, ok := c.docs[path]
	c.mu.RUnlock()
	return ok, nil
}

func (c *InMemoryClient) List(ctx context.Context, path string) ([]Document, error) {
	prefix := strings.TrimSuffix(path, "/") + "/"

	c.mu.RLock()
	var docs []Document
	for p, body := range c.docs {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(p, prefix), "/") {
			continue
		}
		docs = append(docs, Document{Path: p, Body: append([]byte(nil), body...)})
	}
	c.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}
