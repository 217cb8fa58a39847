// Package order provides domain entities and business logic for the
// voice-driven order intake flow. It implements both halves of one order's
// lifecycle: the mutable Draft that accumulates attributes across
// conversation turns, and the immutable Order produced when the draft is
// committed.
//
// The package includes:
//   - Draft: in-progress attribute collection with last-write-wins merging
//   - Update: a partial set of attributes extracted from one turn
//   - Size: the closed small/medium/large enumeration with normalization
//   - Order: the validated, immutable committed record
//
// Key business rules:
//   - Drafts accept raw, unnormalized values so the caller always sees
//     exactly what was captured; normalization happens only at commit
//   - item_type, size, modifier and submitter_name are required; extras are
//     optional, duplicates allowed, mention order preserved
//   - Required-field validation runs in a fixed order and reports the first
//     missing or unrecognized field, so the caller can ask a targeted
//     follow-up question
//   - A committed Order is never mutated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
