// Package storage provides the domain entities of the physical storage
// subsystem: racks with bounded garment capacity and reserved pickup-number
// ranges, and the active allocations occupying those numbers.
//
// The package includes:
//   - Rack: capacity accounting entity (Occupy / Release / CanFit)
//   - Allocation: a pickup number bound to an order chain on a rack
//
// Key business rules:
//   - used capacity never leaves [0, totalCapacity]
//   - a pickup number is unique among active allocations on its rack
//   - capacity and numbers only move through the storage allocator's
//     transactional allocate/release operations
package storage
