// Package render writes pipeline output in the formats datagrid supports:
// a lipgloss table for terminals, JSON, NDJSON and YAML documents for tools,
// and an HTML fragment built from templ components.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pipeline"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
	FormatHTML   = "html"
)

// Table sizes.
const (
	SizeSmall  = "small"
	SizeMiddle = "middle"
	SizeLarge  = "large"
)

// DefaultEmptyMessage is shown when a render produced no rows.
const DefaultEmptyMessage = "No data"

// ErrUnknownFormat is returned by Render for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options controls presentation. The zero value renders a plain middle-sized table.
type Options struct {
	Format       string
	Size         string
	Bordered     bool
	Styled       bool
	Loading      bool
	EmptyMessage string
	ClassName    string
}

func (o Options) emptyMessage() string {
	if o.EmptyMessage == "" {
		return DefaultEmptyMessage
	}
	return o.EmptyMessage
}

// Render writes out to w in opts.Format.
func Render(ctx context.Context, w io.Writer, out *pipeline.Output, opts Options) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "render").
		Str("operation", "render").
		Str("format", opts.Format).
		Int("rows", len(out.Rows)).
		Msg("rendering output")

	switch opts.Format {
	case FormatTable, "":
		return renderTable(w, out, opts)
	case FormatJSON:
		return renderJSON(w, out)
	case FormatNDJSON:
		return renderNDJSON(w, out)
	case FormatYAML:
		return renderYAML(w, out)
	case FormatHTML:
		return Page(out, opts).Render(ctx, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// DisplayString converts a cell display value to text. Nil renders as "".
func DisplayString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
