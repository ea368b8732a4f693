// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

func TestStore_PersistRestore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	cfg := config.Storage{Files: config.Files{SnapshotPath: path}}

	original := New(cfg, logger.Nop())

	alice := models.NewUser("alice", "pw")
	alice.Balance = 120
	original.UpsertUser(alice)
	original.UpsertUser(models.NewUser("bob", "pw2"))

	bookID := original.AddItem(models.Item{Title: "book", Description: "desc", Price: 20, Seller: "alice"})
	original.AddItem(models.Item{Title: "lamp", Description: "bedside", Price: 5, Seller: "bob"})

	book, ok := original.Item(bookID)
	require.True(t, ok)
	book.Sold = true
	require.NoError(t, original.Update(func(tx *Txn) error {
		tx.PutItem(book)
		return nil
	}))

	sent := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	original.AddMessage(models.Message{Sender: "bob", Recipient: "alice", Content: "still available?", ItemID: bookID, SentAt: sent})
	original.AddTransaction(models.Transaction{Buyer: "bob", Seller: "alice", ItemID: bookID, Amount: 20, Timestamp: sent})

	require.NoError(t, original.Persist())

	restored := New(cfg, logger.Nop())
	require.NoError(t, restored.Restore())

	gotAlice, ok := restored.User("alice")
	require.True(t, ok)
	assert.Equal(t, 120.0, gotAlice.Balance)
	assert.Equal(t, "pw", gotAlice.Password)

	_, ok = restored.User("bob")
	assert.True(t, ok)

	gotBook, ok := restored.Item(bookID)
	require.True(t, ok)
	assert.True(t, gotBook.Sold)
	assert.Equal(t, "book", gotBook.Title)

	messages := restored.MessagesFor("alice")
	require.Len(t, messages, 1)
	assert.Equal(t, "still available?", messages[0].Content)
	assert.True(t, messages[0].SentAt.Equal(sent))

	transactions := restored.TransactionsFor("bob")
	require.Len(t, transactions, 1)
	assert.Equal(t, 20.0, transactions[0].Amount)

	// counters survive the round trip: ids keep climbing, never restart
	nextItem := restored.AddItem(models.Item{Title: "new", Seller: "bob"})
	assert.Equal(t, int64(3), nextItem)

	nextTxn := restored.AddTransaction(models.Transaction{Buyer: "alice", Seller: "bob", ItemID: nextItem, Amount: 1})
	assert.Equal(t, int64(2), nextTxn.ID)
}

func TestStore_Restore_MissingSnapshotIsNoOp(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Restore())

	assert.Empty(t, s.SearchItems(""))
	assert.Equal(t, int64(1), s.AddItem(models.Item{Title: "first", Seller: "alice"}))
}

func TestStore_Restore_UnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99}`), 0o644))

	s := New(config.Storage{Files: config.Files{SnapshotPath: path}}, logger.Nop())

	assert.ErrorIs(t, s.Restore(), ErrSnapshotVersion)
}

func TestStore_Restore_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	s := New(config.Storage{Files: config.Files{SnapshotPath: path}}, logger.Nop())

	assert.Error(t, s.Restore())
}

func TestStore_Persist_ReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	cfg := config.Storage{Files: config.Files{SnapshotPath: path}}

	s := New(cfg, logger.Nop())
	s.UpsertUser(models.NewUser("alice", "pw"))
	require.NoError(t, s.Persist())

	s.UpsertUser(models.NewUser("bob", "pw"))
	require.NoError(t, s.Persist())

	restored := New(cfg, logger.Nop())
	require.NoError(t, restored.Restore())

	_, ok := restored.User("alice")
	assert.True(t, ok)
	_, ok = restored.User("bob")
	assert.True(t, ok)

	// only the snapshot itself remains, no temp leftovers
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
