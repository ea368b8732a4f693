// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.Storage{
		Files: config.Files{
			SnapshotPath: filepath.Join(t.TempDir(), "snapshot.json"),
		},
	}

	return New(cfg, logger.Nop())
}

func TestStore_AddItem_AssignsMonotonicIDs(t *testing.T) {
	s := newTestStore(t)

	first := s.AddItem(models.Item{Title: "first", Seller: "alice"})
	second := s.AddItem(models.Item{Title: "second", Seller: "alice"})
	third := s.AddItem(models.Item{Title: "third", Seller: "bob"})

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(3), third)

	// a deleted id is never handed out again
	s.RemoveItem(second)
	fourth := s.AddItem(models.Item{Title: "fourth", Seller: "bob"})
	assert.Equal(t, int64(4), fourth)

	_, ok := s.Item(second)
	assert.False(t, ok)
}

func TestStore_AddItem_OverwritesInputID(t *testing.T) {
	s := newTestStore(t)

	id := s.AddItem(models.Item{ID: 999, Title: "camera", Seller: "alice"})

	assert.Equal(t, int64(1), id)

	item, ok := s.Item(1)
	require.True(t, ok)
	assert.Equal(t, "camera", item.Title)

	_, ok = s.Item(999)
	assert.False(t, ok)
}

func TestStore_SearchItems(t *testing.T) {
	s := newTestStore(t)

	s.AddItem(models.Item{Title: "test item", Description: "an old book", Seller: "alice"}) // id 1
	s.AddItem(models.Item{Title: "bike", Description: "fast TEST machine", Seller: "bob"})  // id 2
	s.AddItem(models.Item{Title: "lamp", Description: "bedside lamp", Seller: "bob"})       // id 3
	soldID := s.AddItem(models.Item{Title: "test chair", Description: "", Seller: "alice"}) // id 4

	sold, ok := s.Item(soldID)
	require.True(t, ok)
	sold.Sold = true
	require.NoError(t, s.Update(func(tx *Txn) error {
		tx.PutItem(sold)
		return nil
	}))

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{
			name:    "empty query matches every unsold item",
			query:   "",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "uppercase query matches lowercase title",
			query:   "TEST",
			wantIDs: []int64{1, 2},
		},
		{
			name:    "matches description as well as title",
			query:   "book",
			wantIDs: []int64{1},
		},
		{
			name:    "sold items are excluded even on exact match",
			query:   "test chair",
			wantIDs: []int64{},
		},
		{
			name:    "no match",
			query:   "submarine",
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := s.SearchItems(tt.query)

			gotIDs := make([]int64, 0, len(found))
			for _, item := range found {
				gotIDs = append(gotIDs, item.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestStore_Users(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.User("alice")
	assert.False(t, ok)

	s.UpsertUser(models.NewUser("alice", "pw"))

	alice, ok := s.User("alice")
	require.True(t, ok)
	assert.Equal(t, models.StartingBalance, alice.Balance)

	// usernames are case-sensitive
	_, ok = s.User("Alice")
	assert.False(t, ok)

	// upsert overwrites by key
	alice.Balance = 50
	s.UpsertUser(alice)
	alice, ok = s.User("alice")
	require.True(t, ok)
	assert.Equal(t, 50.0, alice.Balance)

	s.RemoveUser("alice")
	_, ok = s.User("alice")
	assert.False(t, ok)
}

func TestStore_ItemsBySeller(t *testing.T) {
	s := newTestStore(t)

	s.AddItem(models.Item{Title: "one", Seller: "alice"})
	s.AddItem(models.Item{Title: "two", Seller: "bob"})
	s.AddItem(models.Item{Title: "three", Seller: "alice", Sold: true})

	items := s.ItemsBySeller("alice")

	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
	// sold items still belong to the seller's listing view
	assert.True(t, items[1].Sold)
}

func TestStore_MessagesFor_InsertionOrder(t *testing.T) {
	s := newTestStore(t)

	s.AddMessage(models.Message{Sender: "alice", Recipient: "bob", Content: "hi"})
	s.AddMessage(models.Message{Sender: "bob", Recipient: "alice", Content: "hello"})
	s.AddMessage(models.Message{Sender: "carol", Recipient: "dave", Content: "unrelated"})
	s.AddMessage(models.Message{Sender: "alice", Recipient: "carol", Content: "again"})

	messages := s.MessagesFor("alice")

	require.Len(t, messages, 3)
	assert.Equal(t, "hi", messages[0].Content)
	assert.Equal(t, "hello", messages[1].Content)
	assert.Equal(t, "again", messages[2].Content)

	assert.Empty(t, s.MessagesFor("nobody"))
}

func TestStore_AddTransaction_AssignsMonotonicIDs(t *testing.T) {
	s := newTestStore(t)

	first := s.AddTransaction(models.Transaction{Buyer: "bob", Seller: "alice", ItemID: 1, Amount: 20})
	second := s.AddTransaction(models.Transaction{Buyer: "carol", Seller: "alice", ItemID: 2, Amount: 5})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	forAlice := s.TransactionsFor("alice")
	require.Len(t, forAlice, 2)
	assert.Equal(t, first.ID, forAlice[0].ID)
	assert.Equal(t, second.ID, forAlice[1].ID)

	forBob := s.TransactionsFor("bob")
	require.Len(t, forBob, 1)
	assert.Equal(t, 20.0, forBob[0].Amount)
}

func TestStore_Update_PropagatesClosureError(t *testing.T) {
	s := newTestStore(t)

	wantErr := assert.AnError
	err := s.Update(func(tx *Txn) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}
