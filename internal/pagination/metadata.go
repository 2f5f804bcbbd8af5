package pagination

// Meta is what a pagination widget needs to render itself.
//
//nolint:revive // Meta mirrors the widget's props.
type Meta struct {
	Mode        string `json:"mode"         yaml:"mode"`
	CurrentPage int    `json:"current_page" yaml:"current_page"`
	PageSize    int    `json:"page_size"    yaml:"page_size"`
	TotalPages  int    `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int    `json:"total_items"  yaml:"total_items"`
	HasPrevious bool   `json:"has_previous" yaml:"has_previous"`
	HasNext     bool   `json:"has_next"     yaml:"has_next"`
	Siblings    int    `json:"siblings"     yaml:"siblings"`
	Boundaries  int    `json:"boundaries"   yaml:"boundaries"`
}

// NewMeta creates widget metadata for the given options and computed page counts.
// totalItems is the number of records the pipeline saw; for externally managed
// paging it is only the current page's records.
func NewMeta(opts *Options, currentPage, pageSize, totalPages, totalItems int) Meta {
	return Meta{
		Mode:        opts.Kind().String(),
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: currentPage > 1 && totalPages > 0,
		HasNext:     currentPage < totalPages,
		Siblings:    opts.siblings(),
		Boundaries:  opts.boundaries(),
	}
}

// Visible reports whether a pagination widget should render. It is suppressed
// whenever there is at most one page, independent of mode.
func (m Meta) Visible() bool {
	return m.Mode != KindDisabled.String() && m.TotalPages > 1
}

// Items returns the page links for the widget. See Range.
func (m Meta) Items() []int {
	return Range(m.TotalPages, m.CurrentPage, m.Siblings, m.Boundaries)
}
