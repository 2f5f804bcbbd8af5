package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/pipeline"
)

// Table colors, matching the interactive grid.
const (
	colorHeader = lipgloss.Color("39")
	colorBorder = lipgloss.Color("240")
	colorSubtle = lipgloss.Color("245")
	colorStripe = lipgloss.Color("236")
)

// cellPadding returns vertical and horizontal padding for size.
func cellPadding(size string) (int, int) {
	switch size {
	case SizeSmall:
		return 0, 0
	case SizeLarge:
		return 1, 2
	default:
		return 0, 1
	}
}

func lipglossAlign(align grid.Align) lipgloss.Position {
	switch align {
	case grid.AlignCenter:
		return lipgloss.Center
	case grid.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// renderTable writes out as a lipgloss table followed by the pagination line.
// A loading render replaces the whole table. Colors are only applied when
// opts.Styled is set.
func renderTable(w io.Writer, out *pipeline.Output, opts Options) error {
	subtle := lipgloss.NewStyle()
	if opts.Styled {
		subtle = subtle.Foreground(colorSubtle)
	}

	if opts.Loading {
		if _, err := fmt.Fprintln(w, subtle.Render("Loading...")); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
		return nil
	}

	headers := make([]string, len(out.Columns))
	for i, column := range out.Columns {
		headers[i] = HeaderLabel(column, out.Sort, false)
	}

	rows := make([][]string, 0, len(out.Rows))
	for _, row := range out.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = DisplayString(cell.Display)
		}
		rows = append(rows, cells)
	}

	vertical, horizontal := cellPadding(opts.Size)
	columns := out.Columns

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(vertical, horizontal)
			if col < len(columns) {
				style = style.Align(lipglossAlign(columns[col].Align))
				if columns[col].Width > 0 {
					style = style.Width(columns[col].Width + 2*horizontal)
				}
			}
			if row == table.HeaderRow {
				style = style.Bold(true)
				if opts.Styled {
					style = style.Foreground(colorHeader)
				}
			} else if opts.Styled && row%2 == 1 {
				style = style.Background(colorStripe)
			}
			return style
		})

	if opts.Bordered {
		t = t.Border(lipgloss.NormalBorder()).BorderRow(true)
	} else {
		t = t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
			BorderColumn(false).BorderHeader(true)
	}
	if opts.Styled {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(colorBorder))
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	if out.Empty() {
		if _, err := fmt.Fprintln(w, subtle.Render(opts.emptyMessage())); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}

	if line := PaginationLine(out.Meta); line != "" {
		if _, err := fmt.Fprintln(w, subtle.Render(line)); err != nil {
			return fmt.Errorf("writing pagination: %w", err)
		}
	}

	return nil
}
