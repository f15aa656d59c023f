// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package docstore

import (
	"errors"
	"net"
)

var (
	// ErrNoDocument indicates the path holds no document.
	ErrNoDocument = errors.New("no document at path")
	// ErrUnavailable indicates the backing store cannot be reached.
	// Callers must not treat it as a decision; it is surfaced verbatim.
	ErrUnavailable = errors.New("document store unavailable")
)

// isUnreachable classifies transport-level failures so they can be
// reported as ErrUnavailable rather than leaking driver errors.
func isUnreachable(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
