package source

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datagrid/internal/grid"
)

// ErrInvalidCycle is returned for a column cycle other than "default" or "loop".
var ErrInvalidCycle = errors.New(`cycle must be "default" or "loop"`)

// ColumnSpec is the YAML form of a column definition.
//
//	- key: price
//	  title: Price
//	  align: right
//	  width: 10
//	  sortable: true
//	  cycle: loop
type ColumnSpec struct {
	Key       string `yaml:"key"`
	Title     string `yaml:"title"`
	DataIndex string `yaml:"data_index"`
	Width     int    `yaml:"width"`
	Align     string `yaml:"align"`
	Sortable  *bool  `yaml:"sortable"`
	Cycle     string `yaml:"cycle"`
}

// Column converts the spec. Columns are sortable unless sortable is false, and the
// title defaults to the key.
func (s ColumnSpec) Column() (grid.Column, error) {
	column := grid.Column{
		Key:       s.Key,
		Title:     s.Title,
		DataIndex: s.DataIndex,
		Width:     s.Width,
		Align:     grid.AlignLeft,
		Sorter:    grid.DefaultSorter(),
	}
	if column.Title == "" {
		column.Title = s.Key
	}

	switch grid.Align(s.Align) {
	case "":
	case grid.AlignLeft, grid.AlignCenter, grid.AlignRight:
		column.Align = grid.Align(s.Align)
	default:
		return grid.Column{}, fmt.Errorf("column %q: unknown align %q", s.Key, s.Align)
	}

	if s.Sortable != nil && !*s.Sortable {
		column.Sorter = grid.NotSortable()
	}

	switch s.Cycle {
	case "", "default":
		column.Cycle = grid.CycleDefault
	case "loop":
		column.Cycle = grid.CycleLoop
	default:
		return grid.Column{}, fmt.Errorf("column %q: %w", s.Key, ErrInvalidCycle)
	}

	return column, nil
}

// LoadColumns reads a YAML list of ColumnSpec from path and validates the result.
func LoadColumns(path string) ([]grid.Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading columns file %s: %w", path, err)
	}

	var specs []ColumnSpec
	if err = yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing columns file %s: %w", path, err)
	}

	columns := make([]grid.Column, 0, len(specs))
	for _, spec := range specs {
		column, convErr := spec.Column()
		if convErr != nil {
			return nil, convErr
		}
		columns = append(columns, column)
	}

	if err = grid.ValidateColumns(columns); err != nil {
		return nil, fmt.Errorf("columns file %s: %w", path, err)
	}
	return columns, nil
}
