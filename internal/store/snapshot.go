// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-marketplace/models"
)

// Persist serializes the entire marketplace state to the snapshot file.
//
// The snapshot is written to a temporary file in the same directory and
// renamed into place, so a concurrent [Store.Restore] (or a crash mid-write)
// never observes a torn snapshot. The store lock is held for the whole write,
// which totally orders every snapshot relative to the mutation that triggered
// it.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := models.Snapshot{
		Version:           models.SnapshotVersion,
		Users:             s.users,
		Items:             s.items,
		Messages:          s.messages,
		Transactions:      s.transactions,
		NextItemID:        s.nextItemID,
		NextTransactionID: s.nextTransactionID,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.snapshotPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.snapshotPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating snapshot temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing snapshot temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.snapshotPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error replacing snapshot file: %w", err)
	}

	return nil
}

// Restore loads the snapshot file back, replacing the in-memory state
// wholesale. A missing snapshot file means a fresh start and is not an error.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info().Str("path", s.snapshotPath).Msg("no snapshot found, starting with empty state")
			return nil
		}
		return fmt.Errorf("error reading snapshot file: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("error decoding snapshot: %w", err)
	}

	if snapshot.Version != models.SnapshotVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrSnapshotVersion, snapshot.Version, models.SnapshotVersion)
	}

	s.users = snapshot.Users
	if s.users == nil {
		s.users = make(map[string]models.User)
	}
	s.items = snapshot.Items
	if s.items == nil {
		s.items = make(map[int64]models.Item)
	}
	s.messages = snapshot.Messages
	if s.messages == nil {
		s.messages = make([]models.Message, 0)
	}
	s.transactions = snapshot.Transactions
	if s.transactions == nil {
		s.transactions = make([]models.Transaction, 0)
	}

	s.nextItemID = snapshot.NextItemID
	if s.nextItemID < 1 {
		s.nextItemID = 1
	}
	s.nextTransactionID = snapshot.NextTransactionID
	if s.nextTransactionID < 1 {
		s.nextTransactionID = 1
	}

	s.logger.Info().
		Str("path", s.snapshotPath).
		Int("users", len(s.users)).
		Int("items", len(s.items)).
		Msg("snapshot restored")

	return nil
}
