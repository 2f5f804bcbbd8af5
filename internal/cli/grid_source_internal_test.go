package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/source"
)

func newTestGridCmd(t *testing.T, args ...string) (*cobra.Command, *gridFlags) {
	t.Helper()
	f := newGridFlags()
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd, f
}

func TestGridFlags_ApplyConfig(t *testing.T) {
	table := config.Default().Table
	table.PageSize = 30
	table.Siblings = 2
	table.Boundaries = 0
	table.Locale = "sv"

	t.Run("config fills unset values", func(t *testing.T) {
		cmd, f := newTestGridCmd(t)
		f.applyConfig(cmd, table)
		assert.Equal(t, 30, f.paging.PageSize)
		assert.Equal(t, 2, f.paging.Siblings)
		assert.Equal(t, 0, f.paging.Boundaries)
		assert.Equal(t, "sv", f.locale)
	})

	t.Run("flags win", func(t *testing.T) {
		cmd, f := newTestGridCmd(t, "--page-size", "7", "--siblings", "3", "--locale", "de")
		f.applyConfig(cmd, table)
		assert.Equal(t, 7, f.paging.PageSize)
		assert.Equal(t, 3, f.paging.Siblings)
		assert.Equal(t, "de", f.locale)
	})

	t.Run("disabled keeps page size unset", func(t *testing.T) {
		cmd, f := newTestGridCmd(t, "--no-pagination")
		f.applyConfig(cmd, table)
		assert.Equal(t, 0, f.paging.PageSize)
		assert.NoError(t, f.validate())
	})
}

func TestGridFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"defaults", nil, nil},
		{"memory backend", []string{"--backend", "memory"}, nil},
		{"sqlite demo", []string{"--backend", "sqlite"}, nil},
		{"sqlite table", []string{"--backend", "sqlite", "--table", "t", "--columns", "c.yaml"}, nil},
		{"unknown backend", []string{"--backend", "kafka"}, errUnknownBackend},
		{"backend no paging", []string{"--backend", "memory", "--no-pagination"}, errBackendNoPaging},
		{"backend total", []string{"--backend", "sqlite", "--total-pages", "2"}, errBackendTotal},
		{"table needs columns", []string{"--backend", "sqlite", "--table", "t"}, errTableNeedsColumns},
		{"sqlite with input", []string{"--backend", "sqlite", "--input", "x.csv"}, errSQLiteSeedsDemo},
		{"bad page", []string{"--page", "-2"}, pagination.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newTestGridCmd(t, tt.args...)
			err := f.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadGrid_Demo(t *testing.T) {
	cmd, f := newTestGridCmd(t, "--demo-count", "30", "--sort", "price:desc", "--backend", "memory")
	f.applyConfig(cmd, config.Default().Table)
	require.NoError(t, f.validate())

	data, err := loadGrid(context.Background(), f, config.Default().Table)
	require.NoError(t, err)
	defer data.Close()

	assert.Len(t, data.records, 30)
	assert.NotEmpty(t, data.columns)
	require.NotNil(t, data.sort)
	assert.Equal(t, source.FieldPrice, data.sort.Key)
	require.NotNil(t, data.fetcher)

	page, err := data.fetcher.FetchPage(context.Background(), 3, 10, data.sort)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Records, 10)

	gc := browseConfig(f, data, "", config.Default().Table)
	assert.Equal(t, "Stock Screener", gc.Title)
	assert.Equal(t, data.fetcher, gc.Fetcher)
	assert.Equal(t, 10, gc.Paging.PageSize)
}

func TestGridData_CloseLogsCacheStats(t *testing.T) {
	var buf bytes.Buffer
	saved := logger
	logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { logger = saved })

	cmd, f := newTestGridCmd(t, "--demo-count", "25", "--backend", "memory")
	f.applyConfig(cmd, config.Default().Table)
	require.NoError(t, f.validate())

	ctx := context.Background()
	data, err := loadGrid(ctx, f, config.Default().Table)
	require.NoError(t, err)

	for _, page := range []int{1, 2, 1} {
		_, err = data.fetcher.FetchPage(ctx, page, 10, nil)
		require.NoError(t, err)
	}
	require.NoError(t, data.Close())

	assert.Contains(t, buf.String(), `"cache_hits":1`)
	assert.Contains(t, buf.String(), `"cache_misses":2`)
}

func TestBrowseConfig_Paging(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantKind     pagination.Kind
		wantPage     int
		wantPageSize int
	}{
		{"default", nil, pagination.KindSelfManaged, 0, 10},
		{"no pagination", []string{"--no-pagination"}, pagination.KindDisabled, 0, 0},
		{"initial page", []string{"--page", "3", "--page-size", "5"}, pagination.KindSelfManaged, 3, 5},
		{"total pages", []string{"--total-pages", "9", "--page", "4"}, pagination.KindExternallyManaged, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := newTestGridCmd(t, append([]string{"--demo-count", "12"}, tt.args...)...)
			f.applyConfig(cmd, config.Default().Table)
			require.NoError(t, f.validate())

			data, err := loadGrid(context.Background(), f, config.Default().Table)
			require.NoError(t, err)
			defer data.Close()

			gc := browseConfig(f, data, "", config.Default().Table)
			require.NotNil(t, gc.Paging)
			assert.Equal(t, tt.wantKind, gc.Paging.ToOptions(nil).Kind())
			assert.Equal(t, tt.wantPage, gc.Paging.Page)
			assert.Equal(t, tt.wantPageSize, gc.Paging.PageSize)
		})
	}
}

func TestRenderFlags_Options(t *testing.T) {
	cfg := config.Default()

	t.Run("config defaults", func(t *testing.T) {
		cmd := NewRenderCmd()
		rf := &renderFlags{}
		opts, err := rf.options(cmd, cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.Output.DefaultFormat, opts.Format)
		assert.Equal(t, cfg.Table.Size, opts.Size)
		assert.True(t, opts.Bordered)
	})

	t.Run("flags override", func(t *testing.T) {
		cmd := NewRenderCmd()
		require.NoError(t, cmd.Flags().Set("bordered", "false"))
		rf := &renderFlags{output: "yaml", size: "large", emptyMessage: "none", bordered: false}
		opts, err := rf.options(cmd, cfg)
		require.NoError(t, err)
		assert.Equal(t, "yaml", opts.Format)
		assert.Equal(t, "large", opts.Size)
		assert.False(t, opts.Bordered)
		assert.Equal(t, "none", opts.EmptyMessage)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := (&renderFlags{output: "xml"}).options(NewRenderCmd(), cfg)
		assert.ErrorIs(t, err, errInvalidOutput)
	})
}
