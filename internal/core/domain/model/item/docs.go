// Package item provides the two disjoint garment-item shapes stored behind
// laundry orders: PressingItem (quantity + total) and CleaningItem
// (name + quantity + total). The shapes intentionally share no base type;
// an order resolves its items through its order type.
package item
