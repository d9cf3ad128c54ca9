package services

import "context"

// DeleteGate refuses to issue a delete the user has not confirmed
type DeleteGate struct {
	store Store
}

func NewDeleteGate(store Store) *DeleteGate {
	return &DeleteGate{store: store}
}

// Delete issues exactly one store delete when confirmed and none otherwise
func (g *DeleteGate) Delete(ctx context.Context, table, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return g.store.Delete(ctx, table, id)
}
