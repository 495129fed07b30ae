// Package order provides domain entities and business logic for laundry order
// management. It implements the versioned Order aggregate with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: one version row of an append-only order chain
//   - Status: a state machine for the order workflow
//   - Type, PaymentMethod, PaymentStatus: validated enumerations
//
// Key business rules:
//   - Editing an order never mutates an existing version; NewVersion appends
//     a replacement row and MarkSuperseded retires the previous main version
//   - Order type, pickup number, rack assignment, and total are immutable
//     across versions; only status, payment fields, and the customer change
//   - Delivered is the only terminal status and the only released one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
