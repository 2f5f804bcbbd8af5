package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/pipeline"
)

// Document is the JSON and YAML form of a render.
type Document struct {
	Columns    []ColumnDoc         `json:"columns"    yaml:"columns"`
	Rows       []RowDoc            `json:"rows"       yaml:"rows"`
	Sort       *grid.SortDirective `json:"sort"       yaml:"sort"`
	Pagination pagination.Meta     `json:"pagination" yaml:"pagination"`
}

// ColumnDoc describes one column.
type ColumnDoc struct {
	Key      string     `json:"key"             yaml:"key"`
	Title    string     `json:"title"           yaml:"title"`
	Align    grid.Align `json:"align,omitempty" yaml:"align,omitempty"`
	Sortable bool       `json:"sortable"        yaml:"sortable"`
}

// RowDoc is one visible row. Values holds the raw record values by column key;
// Display holds the rendered text.
type RowDoc struct {
	Key     any               `json:"key"     yaml:"key"`
	Values  map[string]any    `json:"values"  yaml:"values"`
	Display map[string]string `json:"display" yaml:"display"`
}

// NewDocument converts out to its structured form.
func NewDocument(out *pipeline.Output) Document {
	doc := Document{
		Columns:    make([]ColumnDoc, len(out.Columns)),
		Rows:       make([]RowDoc, len(out.Rows)),
		Sort:       out.Sort,
		Pagination: out.Meta,
	}

	for i, column := range out.Columns {
		doc.Columns[i] = ColumnDoc{
			Key:      column.Key,
			Title:    column.Title,
			Align:    column.Align,
			Sortable: column.Sorter.Sortable(),
		}
	}

	for i, row := range out.Rows {
		doc.Rows[i] = newRowDoc(row)
	}

	return doc
}

func newRowDoc(row pipeline.Row) RowDoc {
	r := RowDoc{
		Key:     row.Key,
		Values:  make(map[string]any, len(row.Cells)),
		Display: make(map[string]string, len(row.Cells)),
	}
	for _, cell := range row.Cells {
		r.Values[cell.Column.Key] = cell.Value
		r.Display[cell.Column.Key] = DisplayString(cell.Display)
	}
	return r
}

func renderJSON(w io.Writer, out *pipeline.Output) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewDocument(out)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderNDJSON writes one row per line with no document wrapper.
func renderNDJSON(w io.Writer, out *pipeline.Output) error {
	for _, row := range out.Rows {
		data, marshalErr := json.Marshal(newRowDoc(row))
		if marshalErr != nil {
			return fmt.Errorf("marshaling row: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}

func renderYAML(w io.Writer, out *pipeline.Output) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewDocument(out)); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}
