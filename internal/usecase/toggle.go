package usecase

import (
	"context"
	"errors"

	"vidtube/internal/entity"
)

// toggleEdge runs the shared create-if-absent-else-remove algorithm over
// an edge store. Correctness under concurrent toggles comes entirely from
// the store's uniqueness constraint, never from the initial read:
//
//   - a losing insert surfaces ErrDuplicateEdge, which means a concurrent
//     toggle already achieved "added"; absorb it and report added;
//   - a delete that finds the row already gone re-reads and reports
//     whatever the store holds now, so the caller always observes the
//     post-condition, never a stale guess.
func toggleEdge(
	ctx context.Context,
	find func(context.Context) (string, error),
	insert func(context.Context) error,
	remove func(context.Context, string) (bool, error),
) (entity.ToggleState, error) {
	edgeID, err := find(ctx)
	if errors.Is(err, entity.ErrNotFound) {
		if err := insert(ctx); err != nil {
			if errors.Is(err, entity.ErrDuplicateEdge) {
				return entity.ToggleAdded, nil
			}
			return "", err
		}
		return entity.ToggleAdded, nil
	}
	if err != nil {
		return "", err
	}

	removed, err := remove(ctx, edgeID)
	if err != nil {
		return "", err
	}
	if removed {
		return entity.ToggleRemoved, nil
	}

	if _, err := find(ctx); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ToggleRemoved, nil
		}
		return "", err
	}
	return entity.ToggleAdded, nil
}
