// Package pagination provides the paging stage of the data-grid pipeline.
//
// This package contains:
//   - Options: the pagination mode (disabled, self-managed, externally managed)
//   - Engine: owns the current-page state and the page-change entry point
//   - Paginate: computes the visible window and total page count
//   - Meta and Range: what a pagination widget needs to render itself
//   - Params: CLI flag parsing and validation that produces Options
//
// Externally managed paging is selected by the presence of a total page count.
// In that mode records are assumed to already be exactly one page, and page
// changes are relayed to the caller's OnChange callback without being awaited.
package pagination
