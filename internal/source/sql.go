package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
)

// ErrInvalidIdentifier is returned for table or column names that are not plain
// SQL identifiers.
var ErrInvalidIdentifier = errors.New("invalid SQL identifier")

//nolint:gochecknoglobals // Compiled once.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PageFetcher serves one page of records at a time, the caller side of externally
// managed paging.
type PageFetcher interface {
	FetchPage(ctx context.Context, page, pageSize int, sort *grid.SortDirective) (Page, error)
}

// Page is one fetched page and the total page count at fetch time.
type Page struct {
	Records    []grid.Record
	Number     int
	TotalPages int
}

// SQLSource pages through a single table. Sorting is pushed into ORDER BY, with
// NULLs last in both directions and keyColumn as the tie-breaker.
type SQLSource struct {
	db        *sql.DB
	table     string
	columns   []string
	keyColumn string
}

// NewSQLSource creates a source over table selecting columns. keyColumn must be one
// of columns.
func NewSQLSource(db *sql.DB, table string, columns []string, keyColumn string) (*SQLSource, error) {
	for _, name := range append([]string{table, keyColumn}, columns...) {
		if !identifierPattern.MatchString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	if !slices.Contains(columns, keyColumn) {
		return nil, fmt.Errorf("key column %q is not selected", keyColumn)
	}

	return &SQLSource{db: db, table: table, columns: columns, keyColumn: keyColumn}, nil
}

// Count returns the number of rows in the table.
func (s *SQLSource) Count(ctx context.Context) (int, error) {
	var n int
	//nolint:gosec // table is validated against identifierPattern.
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %q`, s.table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", s.table, err)
	}
	return n, nil
}

// FetchPage returns page (1-based) of pageSize rows ordered by sort.
// A sort key that is not a selected column falls back to key order.
func (s *SQLSource) FetchPage(ctx context.Context, page, pageSize int, sort *grid.SortDirective) (Page, error) {
	log := logging.FromContext(ctx)

	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	total, err := s.Count(ctx)
	if err != nil {
		return Page{}, err
	}

	query := s.pageQuery(sort)
	log.Debug().
		Ctx(ctx).
		Str("component", "source").
		Str("operation", "fetch_page").
		Str("table", s.table).
		Int("page", page).
		Int("page_size", pageSize).
		Str("sort", sort.String()).
		Msg("querying page")

	rows, err := s.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return Page{}, fmt.Errorf("querying %s page %d: %w", s.table, page, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return Page{}, fmt.Errorf("scanning %s page %d: %w", s.table, page, err)
	}

	return Page{
		Records:    records,
		Number:     page,
		TotalPages: pagination.CalculateTotalPages(total, pageSize),
	}, nil
}

func (s *SQLSource) pageQuery(sort *grid.SortDirective) string {
	quoted := make([]string, len(s.columns))
	for i, c := range s.columns {
		quoted[i] = fmt.Sprintf("%q", c)
	}

	order := fmt.Sprintf("%q ASC", s.keyColumn)
	if sort != nil && slices.Contains(s.columns, sort.Key) {
		direction := "ASC"
		if sort.Order == grid.OrderDesc {
			direction = "DESC"
		}
		order = fmt.Sprintf("%q IS NULL, %q %s, %s", sort.Key, sort.Key, direction, order)
	}

	return fmt.Sprintf(`SELECT %s FROM %q ORDER BY %s LIMIT ? OFFSET ?`,
		strings.Join(quoted, ", "), s.table, order)
}

// scanRecords reads every row into a Record. SQL NULL columns are left out so they
// sort as missing; byte slices become strings.
func scanRecords(rows *sql.Rows) ([]grid.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := []grid.Record{}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err = rows.Scan(pointers...); err != nil {
			return nil, err
		}

		record := make(grid.Record, len(columns))
		for i, column := range columns {
			switch v := values[i].(type) {
			case nil:
			case []byte:
				record[column] = string(v)
			default:
				record[column] = v
			}
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// MemorySource serves pages from an in-memory collection, sorting with engine before
// slicing. It stands in for a remote backend in demos and tests.
type MemorySource struct {
	records []grid.Record
	columns []grid.Column
	engine  *grid.SortEngine
}

// NewMemorySource creates a page source over records.
func NewMemorySource(records []grid.Record, columns []grid.Column, engine *grid.SortEngine) *MemorySource {
	if engine == nil {
		engine = grid.NewSortEngineForLocale("")
	}
	return &MemorySource{records: records, columns: columns, engine: engine}
}

// FetchPage returns page of pageSize records ordered by sort.
func (m *MemorySource) FetchPage(ctx context.Context, page, pageSize int, sort *grid.SortDirective) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}

	sorted := m.engine.Sort(m.records, sort, m.columns)
	window := pagination.Paginate(sorted, nil, pageSize, page)
	return Page{Records: window.Visible, Number: page, TotalPages: window.TotalPages}, nil
}
