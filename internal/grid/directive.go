package grid

import (
	"fmt"
	"strings"
)

// sortPartsMax is the maximum number of parts in a sort expression (key:order).
const sortPartsMax = 2

// ParseDirective parses a sort expression in the format "key" or "key:order".
// Examples: "price", "changePercent:desc", "symbol:asc".
// An empty expression yields a nil directive (natural order). A bare key sorts ascending.
func ParseDirective(expr string) (*SortDirective, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil //nolint:nilnil // nil directive is the natural-order value.
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	key := strings.TrimSpace(parts[0])
	if key == "" {
		return nil, ErrEmptySortKey
	}

	order := OrderAsc
	if len(parts) == sortPartsMax {
		order = Order(strings.ToLower(strings.TrimSpace(parts[1])))
	}

	if !order.Valid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return &SortDirective{Key: key, Order: order}, nil
}
