package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations. Everything the
// compensation orchestrator writes for one order goes through a single Do
// call: either every ledger row, PV increment and rank update lands, or none
// do.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
