package memstore

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
)

// SaveForm stores h, replacing a form with the same id.
func (s *Store) SaveForm(_ context.Context, h *form.Handle) error {
	if h == nil || h.ID == "" {
		return fmt.Errorf("%w: form without id", domain.ErrValidation)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(tableForm, &formRow{id: h.ID, handle: h}); err != nil {
		return fmt.Errorf("storing form %s: %w", h.ID, err)
	}
	txn.Commit()
	return nil
}

// LoadForm returns a stored form.
func (s *Store) LoadForm(_ context.Context, id string) (*form.Handle, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableForm, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("loading form %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("form %s: %w", id, domain.ErrNotFound)
	}
	return raw.(*formRow).handle, nil
}

// DeleteForm removes a form. Unknown ids are ignored.
func (s *Store) DeleteForm(_ context.Context, id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tableForm, indexID, id); err != nil {
		return fmt.Errorf("deleting form %s: %w", id, err)
	}
	txn.Commit()
	return nil
}

// GetScratch returns the session's value for key.
func (s *Store) GetScratch(_ context.Context, session, key string) (any, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableScratch, indexID, session, key)
	if err != nil {
		return nil, false, fmt.Errorf("loading scratch %s: %w", key, err)
	}
	if raw == nil {
		return nil, false, nil
	}
	return raw.(*scratchRow).value, true, nil
}

// SetScratch stores value for key in the session.
func (s *Store) SetScratch(_ context.Context, session, key string, value any) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(tableScratch, &scratchRow{session: session, key: key, value: value}); err != nil {
		return fmt.Errorf("storing scratch %s: %w", key, err)
	}
	txn.Commit()
	return nil
}

// ClearScratch removes key from the session. Absent keys are ignored.
func (s *Store) ClearScratch(_ context.Context, session, key string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tableScratch, indexID, session, key); err != nil {
		return fmt.Errorf("clearing scratch %s: %w", key, err)
	}
	txn.Commit()
	return nil
}
