// Package store holds the client-side state stores: session, catalog, cart
// and addresses. Each store caches the slice of remote state it owns and
// replaces it wholesale from server responses; nothing is merged or
// recomputed locally.
//
// Stores are explicit objects meant to be constructed per consumer (or per
// test) and injected; there are no package-level singletons. Each store
// re-reads the persisted token at the start of every authenticated
// operation, so a logout between calls takes effect immediately while
// calls already in flight finish with the token they started with.
package store

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors shared by the stores.
var (
	// ErrNotAuthenticated is returned before any network I/O when an
	// authenticated operation is attempted without a persisted token.
	ErrNotAuthenticated = errors.New("store: no authentication token found")
	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ. Never reaches the network.
	ErrPasswordMismatch = errors.New("store: passwords do not match")
	// ErrMinQuantity is returned when a cart quantity below 1 is requested.
	// Never reaches the network; the UI disables the control at 1.
	ErrMinQuantity = errors.New("store: quantity cannot go below 1")
)

// activity tracks in-flight operations for a store. Views consult Loading
// to disable the triggering control and show progress. Concurrent
// operations on one store are counted, not serialized; the last response
// to arrive wins in the cache.
type activity struct {
	inflight atomic.Int32
}

func (a *activity) begin() { a.inflight.Add(1) }
func (a *activity) end()   { a.inflight.Add(-1) }

// Loading reports whether any operation on this store is in flight.
func (a *activity) Loading() bool {
	return a.inflight.Load() > 0
}
