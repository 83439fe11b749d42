package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeSearcher struct {
	name   string
	symbol string
	err    error
	calls  int
}

func (f *fakeSearcher) SearchSymbol(context.Context, string) (string, error) {
	f.calls++
	return f.symbol, f.err
}

func (f *fakeSearcher) Name() string { return f.name }

type fakeScreener struct {
	symbols []string
	err     error
	gotID   string
	gotN    int
}

func (f *fakeScreener) ScreenerSymbols(_ context.Context, id string, n int) ([]string, error) {
	f.gotID = id
	f.gotN = n
	return f.symbols, f.err
}

func TestTickerResolver_FirstMatch(t *testing.T) {
	yahoo := &fakeSearcher{name: "yahoo", symbol: "tsla"}
	finnhub := &fakeSearcher{name: "finnhub", symbol: "TSLA.MX"}
	r := NewTickerResolver(yahoo, finnhub)

	symbol, ok := r.Resolve(context.Background(), "Tesla")

	assert.Equal(t, true, ok)
	assert.Equal(t, "TSLA", symbol)
	assert.Equal(t, 0, finnhub.calls)
}

func TestTickerResolver_FallsThroughErrors(t *testing.T) {
	yahoo := &fakeSearcher{name: "yahoo", err: errors.New("timeout")}
	finnhub := &fakeSearcher{name: "finnhub", symbol: "AAPL"}
	r := NewTickerResolver(yahoo, finnhub)

	symbol, ok := r.Resolve(context.Background(), "Apple")

	assert.Equal(t, true, ok)
	assert.Equal(t, "AAPL", symbol)
}

func TestTickerResolver_NoMatch(t *testing.T) {
	r := NewTickerResolver(&fakeSearcher{name: "yahoo", err: errors.New("no data")})

	_, ok := r.Resolve(context.Background(), "Nonexistent Widgets")
	assert.Equal(t, false, ok)

	_, ok = r.Resolve(context.Background(), "  ")
	assert.Equal(t, false, ok)
}

func TestSectorAliases(t *testing.T) {
	d := NewSectorDirectory(&fakeScreener{}, nil)

	tech, ok := d.ScreenerID("tech")
	assert.Equal(t, true, ok)
	technology, _ := d.ScreenerID("  Technology ")
	assert.Equal(t, tech, technology)

	auto, _ := d.ScreenerID("AUTO")
	automotive, _ := d.ScreenerID("automotive")
	consumer, _ := d.ScreenerID("consumer")
	assert.Equal(t, "ms_consumer_cyclical", auto)
	assert.Equal(t, auto, automotive)
	assert.Equal(t, auto, consumer)
}

func TestSectorTickers(t *testing.T) {
	s := &fakeScreener{symbols: []string{"LLY", "UNH", "JNJ", "ABBV", "MRK", "PFE"}}
	d := NewSectorDirectory(s, nil)

	tickers, err := d.Tickers(context.Background(), "Healthcare", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"LLY", "UNH", "JNJ", "ABBV", "MRK"}, tickers)
	assert.Equal(t, "ms_healthcare", s.gotID)
	assert.Equal(t, 5, s.gotN)
}

func TestSectorTickers_Unsupported(t *testing.T) {
	s := &fakeScreener{symbols: []string{"X"}}
	d := NewSectorDirectory(s, nil)

	tickers, err := d.Tickers(context.Background(), "gastronomy", 5)

	assert.Equal(t, true, errors.Is(err, ErrUnsupportedSector))
	assert.Equal(t, 0, len(tickers))
	assert.Equal(t, "", s.gotID)
}

func TestSectorTickers_NoData(t *testing.T) {
	d := NewSectorDirectory(&fakeScreener{err: errors.New("no data")}, nil)

	tickers, err := d.Tickers(context.Background(), "energy", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(tickers))
}

func TestSectors_SortedVocabulary(t *testing.T) {
	d := NewSectorDirectory(&fakeScreener{}, map[string]string{"Semiconductors": "ms_technology"})

	sectors := d.Sectors()

	assert.Equal(t, "auto", sectors[0])
	assert.Equal(t, "utilities", sectors[len(sectors)-1])
	id, ok := d.ScreenerID("semiconductors")
	assert.Equal(t, true, ok)
	assert.Equal(t, "ms_technology", id)
}

func TestLoadSectorAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	os.WriteFile(path, []byte("biotech: ms_healthcare\nbanks: ms_financial_services\n"), 0o644)

	aliases, err := LoadSectorAliases(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, "ms_healthcare", aliases["biotech"])
	assert.Equal(t, "ms_financial_services", aliases["banks"])

	_, err = LoadSectorAliases(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotEqual(t, nil, err)
}
