package memory

import "fmt"

// MemoryAddressError reports an access outside a range-checked memory's
// legal window, carrying enough context to reproduce the check.
type MemoryAddressError struct {
	Address uint32
	Min     uint32
	Max     uint32
	Region  string // e.g. "data", "csr"
}

func (e *MemoryAddressError) Error() string {
	return fmt.Sprintf("%s memory address %#x out of range [%#x, %#x]", e.Region, e.Address, e.Min, e.Max)
}
