// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command object
// validates its own construction, and each handler coordinates the session
// registry and the ledger it resolves.
//
// The conversational layer drives four commands:
//   - StartSessionCommand: open a conversation with a fresh, empty ledger
//   - UpdateOrderCommand: merge attributes extracted from the latest turn
//   - CommitOrderCommand: validate and durably record the completed order
//   - EndSessionCommand: abandon the conversation, discarding any draft
package commands
