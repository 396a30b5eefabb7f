package store

import (
	"encoding/json"
	"fmt"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
)

// ExportAll serializes the full persisted state (catalog, transaction
// history and settings) as one pretty-printed JSON document suitable for
// backup.
func (s *Store) ExportAll() ([]byte, error) {
	items := s.Items()
	txns := s.Transactions()
	settings := s.settings
	backup := domain.Backup{
		Items:        &items,
		Transactions: &txns,
		Settings:     &settings,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export state: %w", err)
	}
	return data, nil
}

// ImportAll replaces the in-memory collections wholesale with the sections
// present in the document, then persists and notifies item and settings
// subscribers. A document that fails to parse or validate leaves prior
// state untouched.
func (s *Store) ImportAll(data []byte) error {
	var backup domain.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("import state: %w: %w", ErrInvalidInput, err)
	}
	if err := domain.Validate(backup); err != nil {
		return fmt.Errorf("import state: %w: %w", ErrInvalidInput, err)
	}
	if backup.Items != nil {
		s.items = make([]domain.Item, len(*backup.Items))
		for i, it := range *backup.Items {
			s.items[i] = it.Clone()
		}
		s.persist(storage.KeyItems, s.items)
	}
	if backup.Transactions != nil {
		s.txns = domain.CloneTransactions(*backup.Transactions)
		s.persist(storage.KeyTransactions, s.txns)
	}
	if backup.Settings != nil {
		s.settings = *backup.Settings
		s.persist(storage.KeySettings, s.settings)
	}
	s.log.Info().
		Bool("items", backup.Items != nil).
		Bool("transactions", backup.Transactions != nil).
		Bool("settings", backup.Settings != nil).
		Msg("state imported")
	s.notify(TopicItems)
	s.notify(TopicSettings)
	return nil
}
