package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rshade/datagrid/internal/grid"
)

// StockTable is the table SeedStocks creates.
const StockTable = "stocks"

// StockFields lists the stock columns in display order.
//
//nolint:gochecknoglobals // Fixed schema.
var StockFields = []string{
	FieldSymbol, FieldName, FieldPrice, FieldChangePercent, FieldVolume, FieldRelVolume,
	FieldMarketCap, FieldPE, FieldEPSDiluted, FieldEPSGrowth, FieldDividendYield,
	FieldSector, FieldAnalystRating,
}

// OpenSQLite opens a SQLite database. Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", dsn, err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to sqlite %s: %w", dsn, err)
	}
	return db, nil
}

// SeedStocks creates the stocks table if needed and replaces its contents with records.
func SeedStocks(ctx context.Context, db *sql.DB, records []grid.Record) error {
	schema := `
	CREATE TABLE IF NOT EXISTS stocks (
		symbol TEXT PRIMARY KEY,
		name TEXT,
		price REAL,
		changePercent REAL,
		volume REAL,
		relVolume REAL,
		marketCap REAL,
		pe REAL,
		epsDiluted REAL,
		epsGrowth REAL,
		dividendYield REAL,
		sector TEXT,
		analystRating TEXT
	);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating stocks table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM stocks`); err != nil {
		return fmt.Errorf("clearing stocks: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(StockFields)), ", ")
	insert := fmt.Sprintf(`INSERT INTO stocks (%s) VALUES (%s)`, strings.Join(StockFields, ", "), placeholders)

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(StockFields))
	for _, record := range records {
		for i, field := range StockFields {
			args[i] = record[field]
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting %v: %w", record[FieldSymbol], err)
		}
	}

	return tx.Commit()
}

// NewStockSource returns a SQLSource over the seeded stocks table keyed by symbol.
func NewStockSource(db *sql.DB) (*SQLSource, error) {
	return NewSQLSource(db, StockTable, StockFields, FieldSymbol)
}
