package usecases

import (
	"context"
	"fmt"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/google/uuid"
)

// UplineWalker resolves a member's sponsor chain. Read-only; no side effects.
type UplineWalker struct {
	users repositories.UserRepository
}

// NewUplineWalker creates a new upline walker
func NewUplineWalker(users repositories.UserRepository) *UplineWalker {
	return &UplineWalker{users: users}
}

// Walk follows the sponsor edge from userID up to maxDepth ancestors and
// returns them in order, level 1 first (the direct sponsor). The walk stops
// early at a root member. Revisiting any id is a data-integrity violation:
// sponsor edges are set once at registration and must form a forest, so a
// cycle means corrupted data and the walk fails with ErrCyclicReferral rather
// than truncating silently.
func (w *UplineWalker) Walk(ctx context.Context, userID uuid.UUID, maxDepth int) ([]entities.UplineEntry, error) {
	if maxDepth <= 0 {
		return nil, nil
	}

	visited := map[uuid.UUID]struct{}{userID: {}}
	upline := make([]entities.UplineEntry, 0, maxDepth)

	current := userID
	for level := 1; level <= maxDepth; level++ {
		sponsorID, err := w.users.GetSponsorID(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("resolve sponsor of %s: %w", current, err)
		}
		if sponsorID == nil {
			break
		}
		if _, seen := visited[*sponsorID]; seen {
			return nil, fmt.Errorf("sponsor chain of %s revisits %s at level %d: %w",
				userID, *sponsorID, level, domainerrors.ErrCyclicReferral)
		}
		visited[*sponsorID] = struct{}{}
		upline = append(upline, entities.UplineEntry{UserID: *sponsorID, Level: level})
		current = *sponsorID
	}

	return upline, nil
}
