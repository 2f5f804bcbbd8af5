// Package source supplies records and column definitions to the grid: a
// deterministic demo stock screener, file loaders, and a SQL-backed page source
// for externally managed paging.
package source

import (
	"math"
	"math/rand/v2"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/datagrid/internal/grid"
)

// DemoStockCount is the size of the demo data set.
const DemoStockCount = 125

// Demo stock field names.
const (
	FieldSymbol        = "symbol"
	FieldName          = "name"
	FieldPrice         = "price"
	FieldChangePercent = "changePercent"
	FieldVolume        = "volume"
	FieldRelVolume     = "relVolume"
	FieldMarketCap     = "marketCap"
	FieldPE            = "pe"
	FieldEPSDiluted    = "epsDiluted"
	FieldEPSGrowth     = "epsGrowth"
	FieldDividendYield = "dividendYield"
	FieldSector        = "sector"
	FieldAnalystRating = "analystRating"
)

//nolint:gochecknoglobals // Fixed demo vocabularies.
var (
	stockSymbols = []string{
		"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NFLX", "NVDA", "ORCL", "CRM",
		"ADBE", "INTC", "AMD", "PYPL", "UBER", "LYFT", "SPOT", "ZOOM", "TWTR", "SNAP",
		"PINS", "SQ", "SHOP", "ROKU", "DKNG", "PLTR", "RBLX", "COIN", "HOOD", "DOCU",
		"ZM", "WORK", "OKTA", "SNOW", "CRWD", "NET", "DDOG", "MDB", "TEAM", "ATLASSIAN",
		"SPLK", "VEEV", "WDAY", "PANW", "FTNT", "CYBR", "CSCO", "IBM", "HPQ", "DELL",
	}
	stockCompanies = []string{
		"Apple Inc.", "Alphabet Inc.", "Microsoft Corporation", "Amazon.com Inc.", "Tesla Inc.",
		"Meta Platforms Inc.", "Netflix Inc.", "NVIDIA Corporation", "Oracle Corporation", "Salesforce Inc.",
		"Adobe Inc.", "Intel Corporation", "Advanced Micro Devices", "PayPal Holdings", "Uber Technologies",
		"Lyft Inc.", "Spotify Technology", "Zoom Video Communications", "Twitter Inc.", "Snap Inc.",
		"Pinterest Inc.", "Block Inc.", "Shopify Inc.", "Roku Inc.", "DraftKings Inc.",
		"Palantir Technologies", "Roblox Corporation", "Coinbase Global", "Robinhood Markets", "DocuSign Inc.",
		"Zoom Video Communications", "Slack Technologies", "Okta Inc.", "Snowflake Inc.", "CrowdStrike Holdings",
		"Cloudflare Inc.", "Datadog Inc.", "MongoDB Inc.", "Atlassian Corporation", "Atlassian Corporation",
		"Splunk Inc.", "Veeva Systems", "Workday Inc.", "Palo Alto Networks", "Fortinet Inc.",
		"CyberArk Software", "Cisco Systems", "IBM Corporation", "HP Inc.", "Dell Technologies",
	}
	stockSectors = []string{
		"Technology Services", "Electronic Technology", "Consumer Staples", "Consumer Durables",
		"Retail Trade", "Health Services", "Finance", "Communications", "Energy Minerals",
		"Process Industries",
	}
	analystRatings = []string{"Strong buy", "Buy", "Hold", "Sell", "Strong sell"}
)

// StockRecords generates count demo stock records. The same seed always yields the
// same records. Symbols repeat every 50 records with a numeric suffix, so they stay
// unique and serve as row keys.
func StockRecords(count int, seed uint64) []grid.Record {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	between := func(lo, hi float64) float64 { return round2(lo + rng.Float64()*(hi-lo)) }

	records := make([]grid.Record, count)
	for i := range records {
		symbol := stockSymbols[i%len(stockSymbols)]
		if i >= len(stockSymbols) {
			symbol += strconv.Itoa(i / len(stockSymbols))
		}

		records[i] = grid.Record{
			FieldSymbol:        symbol,
			FieldName:          stockCompanies[i%len(stockCompanies)],
			FieldPrice:         between(10, 510),
			FieldChangePercent: between(-10, 10),
			FieldVolume:        between(1, 101),
			FieldRelVolume:     between(0.1, 3.1),
			FieldMarketCap:     between(0.1, 10.1),
			FieldPE:            between(5, 55),
			FieldEPSDiluted:    between(0.5, 10.5),
			FieldEPSGrowth:     between(-25, 25),
			FieldDividendYield: between(0, 5),
			FieldSector:        stockSectors[i%len(stockSectors)],
			FieldAnalystRating: analystRatings[i%len(analystRatings)],
		}
	}
	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RatingRank orders analyst ratings from most to least bullish. Unknown ratings rank last.
func RatingRank(rating string) int {
	for i, r := range analystRatings {
		if r == rating {
			return i
		}
	}
	return len(analystRatings)
}

// compareRatings orders records by analyst conviction rather than alphabetically.
func compareRatings(a, b grid.Record) int {
	ra, _ := a[FieldAnalystRating].(string)
	rb, _ := b[FieldAnalystRating].(string)
	return RatingRank(ra) - RatingRank(rb)
}

// StockColumns returns the demo screener columns. Numeric cells are formatted for
// locale with golang.org/x/text/message.
func StockColumns(locale language.Tag) []grid.Column {
	p := message.NewPrinter(locale)

	fixed := func(suffix string) grid.RenderFunc {
		return func(value any, _ grid.Record, _ int) any {
			v, ok := value.(float64)
			if !ok {
				return value
			}
			return p.Sprintf("%.2f", v) + suffix
		}
	}
	signed := func(value any, _ grid.Record, _ int) any {
		v, ok := value.(float64)
		if !ok {
			return value
		}
		if v >= 0 {
			return p.Sprintf("+%.2f%%", v)
		}
		return p.Sprintf("%.2f%%", v)
	}

	return []grid.Column{
		{Key: FieldSymbol, Title: "Symbol", Width: 10, Align: grid.AlignLeft, Sorter: grid.DefaultSorter()},
		{Key: FieldName, Title: "Name", Width: 26, Sorter: grid.DefaultSorter()},
		{Key: FieldPrice, Title: "Price", Width: 10, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: fixed("")},
		{
			Key: FieldChangePercent, Title: "Change%", Width: 9, Align: grid.AlignRight,
			Sorter: grid.DefaultSorter(), Cycle: grid.CycleLoop, Render: signed,
		},
		{Key: FieldVolume, Title: "Volume", Width: 9, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: fixed("M")},
		{Key: FieldRelVolume, Title: "Rel Volume", Width: 10, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: fixed("")},
		{Key: FieldMarketCap, Title: "Market cap", Width: 10, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: fixed("T")},
		{Key: FieldPE, Title: "P/E", Width: 8, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: fixed("")},
		{Key: FieldEPSDiluted, Title: "EPS dil", Width: 8, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: fixed("")},
		{Key: FieldEPSGrowth, Title: "EPS dil growth", Width: 14, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: signed},
		{Key: FieldDividendYield, Title: "Div yield %", Width: 11, Align: grid.AlignRight, Sorter: grid.DefaultSorter(), Render: signed},
		{Key: FieldSector, Title: "Sector", Width: 22, Sorter: grid.NotSortable()},
		{
			Key: FieldAnalystRating, Title: "Analyst Rating", Width: 14, Align: grid.AlignRight,
			Sorter: grid.CustomSorter(compareRatings),
		},
	}
}
