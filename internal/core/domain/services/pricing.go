package services

// Pricing constants for pressing orders. Every complete dozen is charged the
// discounted block price; the remainder is charged per unit.
const (
	// PressingUnitPrice is the price of a single pressed garment.
	PressingUnitPrice = 14

	// PressingBlockSize is the number of garments in a discounted block.
	PressingBlockSize = 12

	// PressingBlockPrice is the discounted price of one complete block.
	PressingBlockPrice = 140
)

// CleaningLine is one pre-priced dry-cleaning line at order entry: a unit
// price the clerk chose inside the catalog option's min/max band, and a
// quantity. The pricing engine only sums pre-priced lines; it never picks
// prices itself.
type CleaningLine struct {
	UnitPrice int
	Quantity  int
}

// PressingTotal computes the monetary total for a pressing order of the given
// quantity using tiered block pricing:
//
//	total = floor(q/12)*140 + (q mod 12)*14
//
// A zero or negative quantity yields 0. The function is pure and
// non-decreasing in quantity.
func PressingTotal(quantity int) int {
	if quantity <= 0 {
		return 0
	}

	blocks := quantity / PressingBlockSize
	remainder := quantity % PressingBlockSize
	return blocks*PressingBlockPrice + remainder*PressingUnitPrice
}

// CleaningTotal sums pre-priced cleaning lines: Σ unitPrice × quantity.
// Lines with non-positive quantity or unit price contribute nothing.
func CleaningTotal(lines []CleaningLine) int {
	total := 0
	for _, line := range lines {
		if line.Quantity <= 0 || line.UnitPrice <= 0 {
			continue
		}
		total += line.UnitPrice * line.Quantity
	}
	return total
}

// PressingGarmentCount returns the garment units a pressing order consumes on
// a rack: the requested quantity, floored at 0.
func PressingGarmentCount(quantity int) int {
	if quantity <= 0 {
		return 0
	}
	return quantity
}

// CleaningGarmentCount returns the garment units a cleaning order consumes on
// a rack: the sum of its line quantities.
func CleaningGarmentCount(lines []CleaningLine) int {
	count := 0
	for _, line := range lines {
		if line.Quantity > 0 {
			count += line.Quantity
		}
	}
	return count
}
