// internal/core/domain/category.go
package domain

import (
	"fmt"
	"strings"
)

// Category is a named class of clothing with aggregate unit counts.
// Total always equals Available + InLaundry.
type Category struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	InLaundry int    `json:"inLaundry"`
}

// NewCategory returns an empty category with the trimmed name.
func NewCategory(name string) Category {
	return Category{Name: strings.TrimSpace(name)}
}

// Validate checks the count invariant.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if c.Total < 0 || c.Available < 0 || c.InLaundry < 0 {
		return &ValidationError{Field: "counts", Message: fmt.Sprintf("counts for %q cannot be negative", c.Name)}
	}
	if c.Total != c.Available+c.InLaundry {
		return &ValidationError{
			Field:   "total",
			Message: fmt.Sprintf("total %d for %q does not match available %d + in laundry %d", c.Total, c.Name, c.Available, c.InLaundry),
		}
	}
	return nil
}

// SameName reports whether name matches the category case-insensitively after trimming.
func (c Category) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}

// Increment adds one available unit.
func (c *Category) Increment() {
	c.Total++
	c.Available++
}

// Decrement removes one unit, drawing from available first and from the
// laundry when every unit is out. It is a no-op on an empty category.
func (c *Category) Decrement() {
	if c.Total == 0 {
		return
	}
	c.Total--
	if c.Available > 0 {
		c.Available--
		return
	}
	if c.InLaundry > 0 {
		c.InLaundry--
	}
}

// CanSend reports whether quantity units can move into the laundry.
func (c Category) CanSend(quantity int) bool {
	return quantity > 0 && c.Available >= quantity
}

// Send moves quantity units from available to in laundry.
func (c *Category) Send(quantity int) {
	c.Available -= quantity
	c.InLaundry += quantity
}

// CanReturn reports whether quantity units can come back from the laundry.
func (c Category) CanReturn(quantity int) bool {
	return quantity > 0 && c.InLaundry >= quantity
}

// Return moves quantity units from in laundry back to available.
func (c *Category) Return(quantity int) {
	c.Available += quantity
	c.InLaundry -= quantity
}

// UnitRangeStart is the first sequence number used for unit identifiers
// assigned when this category's units are sent to the laundry.
func (c Category) UnitRangeStart() int {
	return c.Total - c.Available - c.InLaundry + 1
}
