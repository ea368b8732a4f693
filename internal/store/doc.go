// Package store holds the authoritative in-memory marketplace state and its
// snapshot persistence.
//
// All reads and writes go through one exclusive lock scoped to the whole
// store, so every single operation is atomic and [Store.Persist] always
// captures a state consistent with the mutations applied so far. Multi-step
// critical sections (the payment transfer, the account-deletion cascade) run
// inside [Store.Update], which holds the same lock for the whole closure.
package store
