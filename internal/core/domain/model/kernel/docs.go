// Package kernel provides core domain primitives for the order-intake system.
// It implements the fundamental building blocks used throughout the domain
// model.
//
// The package includes:
//   - UUID: a value object identifying a conversation session
//   - OrderID: a value object identifying a committed order, derived from a
//     sortable timestamp plus a same-second disambiguator
//
// These primitives enforce domain invariants and validation rules, ensuring
// that identifiers are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
