package pagination

// Pagination defaults and limits.
const (
	DefaultPageSize   = 10
	DefaultPage       = 1
	MinPage           = 1
	DefaultSiblings   = 1
	DefaultBoundaries = 1
)

// Kind is the pagination mode.
type Kind int

const (
	// KindSelfManaged slices records locally from page size and record count.
	KindSelfManaged Kind = iota
	// KindExternallyManaged passes records through and relays page changes to the caller.
	KindExternallyManaged
	// KindDisabled shows every record and no pagination widget.
	KindDisabled
)

// String returns the mode name used in logs.
func (k Kind) String() string {
	switch k {
	case KindSelfManaged:
		return "self_managed"
	case KindExternallyManaged:
		return "externally_managed"
	case KindDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ChangeFunc is notified of a requested page. It is invoked and forgotten: the engine
// never waits on it. An asynchronous caller eventually supplies a new Options.Page
// (and records) which the engine adopts.
type ChangeFunc func(page int)

// Options configures pagination. A nil *Options means self-managed with defaults.
//
// The mode is derived, not declared: Disabled wins, then the presence of Total selects
// externally managed paging, and anything else is self-managed.
type Options struct {
	// Disabled turns pagination off entirely.
	Disabled bool

	// Total is the caller-supplied total page count. Its presence means the caller
	// manages paging and records already hold exactly one page.
	Total *int

	// Page is an explicit current page. When set, it overrides the locally driven page
	// every time its value changes.
	Page *int

	// PageSize is the number of records per page. Takes precedence over the
	// deprecated top-level page size.
	PageSize int

	// Siblings is the number of page links shown on each side of the current page.
	Siblings int

	// Boundaries is the number of page links pinned at each end of the range.
	Boundaries int

	// OnChange is notified after the current page changes.
	OnChange ChangeFunc
}

// Kind returns the pagination mode described by o.
func (o *Options) Kind() Kind {
	switch {
	case o == nil:
		return KindSelfManaged
	case o.Disabled:
		return KindDisabled
	case o.Total != nil:
		return KindExternallyManaged
	default:
		return KindSelfManaged
	}
}

// ExplicitPage returns the caller-supplied page, if any. Disabled options never
// supply one.
func (o *Options) ExplicitPage() (int, bool) {
	if o == nil || o.Disabled || o.Page == nil {
		return 0, false
	}
	return *o.Page, true
}

// siblings returns the configured sibling count or the default.
func (o *Options) siblings() int {
	if o == nil || o.Siblings <= 0 {
		return DefaultSiblings
	}
	return o.Siblings
}

// boundaries returns the configured boundary count or the default.
func (o *Options) boundaries() int {
	if o == nil || o.Boundaries <= 0 {
		return DefaultBoundaries
	}
	return o.Boundaries
}

// Disabled returns options that turn pagination off.
func Disabled() *Options {
	return &Options{Disabled: true}
}

// SelfManaged returns options for local paging starting at initialPage.
// An initialPage below MinPage leaves the page unset (starts at DefaultPage).
func SelfManaged(initialPage, pageSize int) *Options {
	opts := &Options{PageSize: pageSize}
	if initialPage >= MinPage {
		opts.Page = &initialPage
	}
	return opts
}

// ExternallyManaged returns options for caller-managed paging. onChange may be nil,
// in which case page changes stay local.
func ExternallyManaged(currentPage, totalPages, pageSize int, onChange ChangeFunc) *Options {
	return &Options{
		Total:    &totalPages,
		Page:     &currentPage,
		PageSize: pageSize,
		OnChange: onChange,
	}
}

// ResolvePageSize applies page-size precedence: an explicit Options.PageSize, then the
// deprecated top-level legacy size, then DefaultPageSize.
func ResolvePageSize(opts *Options, legacy int) int {
	if opts != nil && opts.PageSize > 0 {
		return opts.PageSize
	}
	if legacy > 0 {
		return legacy
	}
	return DefaultPageSize
}
