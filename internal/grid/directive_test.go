package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    *SortDirective
		wantErr error
	}{
		{name: "empty", expr: "", want: nil},
		{name: "whitespace", expr: "   ", want: nil},
		{name: "key only", expr: "price", want: &SortDirective{Key: "price", Order: OrderAsc}},
		{name: "key and asc", expr: "price:asc", want: &SortDirective{Key: "price", Order: OrderAsc}},
		{name: "key and desc upper", expr: " price : DESC ", want: &SortDirective{Key: "price", Order: OrderDesc}},
		{name: "too many parts", expr: "a:b:c", wantErr: ErrInvalidSortFormat},
		{name: "empty key", expr: ":asc", wantErr: ErrEmptySortKey},
		{name: "invalid order", expr: "price:up", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirective(tt.expr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortDirective_String(t *testing.T) {
	var d *SortDirective
	assert.Empty(t, d.String())
	assert.Equal(t, "price:desc", (&SortDirective{Key: "price", Order: OrderDesc}).String())
}

func TestValidateColumns(t *testing.T) {
	assert.NoError(t, ValidateColumns([]Column{{Key: "a"}, {Key: "b"}}))
	assert.ErrorIs(t, ValidateColumns([]Column{{Key: "a"}, {Key: "a"}}), ErrDuplicateColumnKey)
	assert.ErrorIs(t, ValidateColumns([]Column{{Key: ""}}), ErrEmptyColumnKey)
}

func TestColumn_Field(t *testing.T) {
	assert.Equal(t, "price", Column{Key: "price"}.Field())
	assert.Equal(t, "last", Column{Key: "price", DataIndex: "last"}.Field())
}
