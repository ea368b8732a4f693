// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

// Store is the coarse-locked implementation of [Market]. One mutex guards
// every read and write across all entity kinds; this serializes all
// marketplace activity but makes each operation trivially atomic.
type Store struct {
	mu sync.Mutex

	users map[string]models.User
	items map[int64]models.Item

	messages     []models.Message
	transactions []models.Transaction

	nextItemID        int64
	nextTransactionID int64

	snapshotPath string
	logger       *logger.Logger
}

var _ Market = (*Store)(nil)

// New constructs an empty Store persisting to the snapshot path from cfg.
func New(cfg config.Storage, logger *logger.Logger) *Store {
	return &Store{
		users:             make(map[string]models.User),
		items:             make(map[int64]models.Item),
		messages:          make([]models.Message, 0),
		transactions:      make([]models.Transaction, 0),
		nextItemID:        1,
		nextTransactionID: 1,
		snapshotPath:      cfg.Files.SnapshotPath,
		logger:            logger,
	}
}

// UpsertUser inserts or overwrites a user keyed by username.
func (s *Store) UpsertUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.Username] = user
}

// User returns the user with the given username, if present.
func (s *Store) User(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	return user, ok
}

// RemoveUser removes the user entry only; items are not cascaded here.
func (s *Store) RemoveUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, username)
}

// AddItem assigns the next item id, stores the item, and returns the id.
// The argument's ID field is overwritten regardless of its input value.
func (s *Store) AddItem(item models.Item) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addItemLocked(item)
}

// Item returns the item with the given id, if present.
func (s *Store) Item(id int64) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	return item, ok
}

// RemoveItem removes the item with the given id. Ids are never reused.
func (s *Store) RemoveItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
}

// SearchItems returns unsold items whose title or description contains query
// case-insensitively, sorted by id for determinism. The empty query matches
// every unsold item.
func (s *Store) SearchItems(query string) []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(query)

	found := make([]models.Item, 0)
	for _, item := range s.items {
		if item.Sold {
			continue
		}
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			found = append(found, item)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })

	return found
}

// ItemsBySeller returns all items listed by seller, sold or not, sorted by id.
func (s *Store) ItemsBySeller(seller string) []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.itemsBySellerLocked(seller)
}

// AddMessage appends a message to the log.
func (s *Store) AddMessage(message models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, message)
}

// MessagesFor returns messages where username is sender or recipient, in
// insertion order.
func (s *Store) MessagesFor(username string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := make([]models.Message, 0)
	for _, message := range s.messages {
		if message.Sender == username || message.Recipient == username {
			found = append(found, message)
		}
	}

	return found
}

// AddTransaction assigns the next transaction id, appends the record, and
// returns the stored record.
func (s *Store) AddTransaction(transaction models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addTransactionLocked(transaction)
}

// TransactionsFor returns transactions where username is buyer or seller, in
// insertion order.
func (s *Store) TransactionsFor(username string) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := make([]models.Transaction, 0)
	for _, transaction := range s.transactions {
		if transaction.Buyer == username || transaction.Seller == username {
			found = append(found, transaction)
		}
	}

	return found
}

// Update runs fn under the store's exclusive lock via [Txn].
func (s *Store) Update(fn func(tx *Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&Txn{store: s})
}

func (s *Store) addItemLocked(item models.Item) int64 {
	item.ID = s.nextItemID
	s.nextItemID++
	s.items[item.ID] = item

	return item.ID
}

func (s *Store) addTransactionLocked(transaction models.Transaction) models.Transaction {
	transaction.ID = s.nextTransactionID
	s.nextTransactionID++
	s.transactions = append(s.transactions, transaction)

	return transaction
}

func (s *Store) itemsBySellerLocked(seller string) []models.Item {
	found := make([]models.Item, 0)
	for _, item := range s.items {
		if item.Seller == seller {
			found = append(found, item)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })

	return found
}
