package grid

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors reported by configuration helpers. Render paths never return them.
var (
	// ErrDuplicateColumnKey indicates two columns share the same Key.
	ErrDuplicateColumnKey = constError("duplicate column key")

	// ErrEmptyColumnKey indicates a column without a Key.
	ErrEmptyColumnKey = constError("column key cannot be empty")

	// ErrInvalidSortOrder indicates an order other than "asc" or "desc".
	ErrInvalidSortOrder = constError("sort order must be 'asc' or 'desc'")

	// ErrInvalidSortFormat indicates a sort expression that is not "key" or "key:order".
	ErrInvalidSortFormat = constError("invalid sort format: use 'key' or 'key:order' (e.g., 'price:desc')")

	// ErrEmptySortKey indicates a sort expression without a column key.
	ErrEmptySortKey = constError("sort key cannot be empty")
)
