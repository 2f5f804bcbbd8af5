// Package grid holds the record and column model of the data grid together with
// the two leaf stages of the data-shaping pipeline:
//   - Row keys: ResolveRowKey derives a stable identity for a record
//   - Sorting: SortEngine orders records by a single-column SortDirective
//   - Sort cycling: NextDirective and HeaderClick drive the directive state machine
//     triggered by column-header interaction
//
// Nothing in this package returns an error from a render path. A directive naming an
// unknown column, a record without a row key, or duplicate column keys all degrade to
// natural order or positional identity.
package grid
