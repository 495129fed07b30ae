// Package services provides stateless domain services for the laundromat
// system: the pricing engine (pressing block pricing, cleaning line sums,
// garment counts) and the storage allocator (rack and pickup-number
// selection). Both are pure functions over domain entities; all persistence
// and locking belongs to the application layer's unit of work.
package services
