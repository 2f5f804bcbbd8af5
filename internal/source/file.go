package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datagrid/internal/grid"
)

// Loader errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNotRecordList     = errors.New("document must be a list of objects")
)

// Dataset is a loaded record collection with its field names in first-seen order.
type Dataset struct {
	Records []grid.Record
	Fields  []string
}

// LoadFile reads records from path. The format follows the extension: .json, .yaml,
// .yml or .csv.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	ds, err := Load(f, strings.TrimPrefix(ext, "."))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ds, nil
}

// Load reads records from r in format ("json", "yaml", "yml" or "csv").
func Load(r io.Reader, format string) (*Dataset, error) {
	switch format {
	case "json", "yaml", "yml":
		return loadDocument(r)
	case "csv":
		return loadCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// loadDocument decodes a JSON or YAML list of objects. Decoding through yaml.Node
// keeps each object's key order, which becomes the column order.
func loadDocument(r io.Reader) (*Dataset, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{Records: []grid.Record{}}, nil
		}
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.SequenceNode {
		return nil, ErrNotRecordList
	}

	ds := &Dataset{Records: make([]grid.Record, 0, len(doc.Content))}
	seen := map[string]bool{}

	for i, item := range doc.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: item %d", ErrNotRecordList, i)
		}

		record := make(grid.Record, len(item.Content)/2)
		for j := 0; j+1 < len(item.Content); j += 2 {
			key := item.Content[j].Value

			var value any
			if err := item.Content[j+1].Decode(&value); err != nil {
				return nil, fmt.Errorf("item %d field %q: %w", i, key, err)
			}
			record[key] = value

			if !seen[key] {
				seen[key] = true
				ds.Fields = append(ds.Fields, key)
			}
		}
		ds.Records = append(ds.Records, record)
	}

	return ds, nil
}

// loadCSV reads a CSV file with a header row. Plain finite decimal cells become
// numbers, identifiers such as zip codes keep their leading zeros, and empty cells are left out of the record so they sort as missing.
func loadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Dataset{Records: []grid.Record{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	ds := &Dataset{Records: []grid.Record{}, Fields: header}
	for line := 2; ; line++ {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", line, readErr)
		}

		record := make(grid.Record, len(header))
		for i, cell := range row {
			if cell == "" {
				continue
			}
			record[header[i]] = parseCell(cell)
		}
		ds.Records = append(ds.Records, record)
	}

	return ds, nil
}

// decimalCell matches plain decimal numbers. Leading zeros, hex, infinities and NaN
// fall through and stay strings.
var decimalCell = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func parseCell(cell string) any {
	if decimalCell.MatchString(cell) {
		if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
		return cell
	}
	switch strings.ToLower(cell) {
	case "true":
		return true
	case "false":
		return false
	}
	return cell
}

// InferColumns builds sortable columns for fields. A column whose present values
// are all numbers is right-aligned.
func InferColumns(ds *Dataset) []grid.Column {
	columns := make([]grid.Column, 0, len(ds.Fields))
	for _, field := range ds.Fields {
		column := grid.Column{
			Key:    field,
			Title:  field,
			Align:  grid.AlignLeft,
			Sorter: grid.DefaultSorter(),
		}
		if numericField(ds.Records, field) {
			column.Align = grid.AlignRight
		}
		columns = append(columns, column)
	}
	return columns
}

func numericField(records []grid.Record, field string) bool {
	found := false
	for _, record := range records {
		value, ok := record[field]
		if !ok || value == nil {
			continue
		}
		switch value.(type) {
		case int, int64, float64:
			found = true
		default:
			return false
		}
	}
	return found
}
