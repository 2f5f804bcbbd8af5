package pagination

import (
	"errors"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidTotalPages = errors.New("total-pages cannot be negative")
	ErrDisabledWithPage  = errors.New("--no-pagination cannot be combined with --page, --page-size or --total-pages")
)

// MaxPageSize caps page sizes accepted from the command line.
const MaxPageSize = 1000

// Params holds CLI pagination flags and provides validation.
// Supports three modes:
//   - Disabled: --no-pagination
//   - Self-managed: --page and --page-size (both optional)
//   - Externally managed: --total-pages, with --page naming the page the records hold
//
//nolint:revive // Params is the canonical name for this exported type.
type Params struct {
	// Page is the 1-based page number. 0 means not set.
	Page int

	// PageSize is the number of records per page. 0 means use configuration.
	PageSize int

	// TotalPages is the caller-supplied page count for externally managed paging.
	// -1 means not set.
	TotalPages int

	// Disabled turns pagination off.
	Disabled bool

	// Siblings and Boundaries shape the pagination widget's page links.
	Siblings   int
	Boundaries int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:       0, // 0 means start at DefaultPage
		PageSize:   0, // 0 means defer to configuration
		TotalPages: -1,
		Siblings:   DefaultSiblings,
		Boundaries: DefaultBoundaries,
	}
}

// Validate checks if the pagination parameters are valid and consistent (value receiver).
func (p Params) Validate() error {
	if p.Page < 0 {
		return ErrInvalidPage
	}
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	if p.TotalPages < -1 {
		return ErrInvalidTotalPages
	}
	if p.Disabled && (p.Page > 0 || p.PageSize > 0 || p.TotalPages >= 0) {
		return ErrDisabledWithPage
	}
	return nil
}

// IsExternallyManaged returns true if a total page count was supplied.
func (p Params) IsExternallyManaged() bool {
	return !p.Disabled && p.TotalPages >= 0
}

// ToOptions converts validated flags into pipeline Options. onChange is attached to
// enabled modes.
func (p Params) ToOptions(onChange ChangeFunc) *Options {
	if p.Disabled {
		return Disabled()
	}

	opts := &Options{
		PageSize:   p.PageSize,
		Siblings:   p.Siblings,
		Boundaries: p.Boundaries,
		OnChange:   onChange,
	}
	if p.Page > 0 {
		page := p.Page
		opts.Page = &page
	}
	if p.IsExternallyManaged() {
		total := p.TotalPages
		opts.Total = &total
	}
	return opts
}
