package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedSector = errors.New("unsupported sector")

const DefaultSectorCount = 5

// defaultScreeners maps recognized sector labels to Yahoo predefined screeners.
var defaultScreeners = map[string]string{
	"technology":         "ms_technology",
	"tech":               "ms_technology",
	"finance":            "ms_financial_services",
	"financial":          "ms_financial_services",
	"healthcare":         "ms_healthcare",
	"health":             "ms_healthcare",
	"energy":             "ms_energy",
	"retail":             "ms_consumer_cyclical",
	"consumer":           "ms_consumer_cyclical",
	"industrial":         "ms_industrials",
	"basic_materials":    "ms_basic_materials",
	"materials":          "ms_basic_materials",
	"utilities":          "ms_utilities",
	"real_estate":        "ms_real_estate",
	"communication":      "ms_communication_services",
	"consumer_defensive": "ms_consumer_defensive",
	"automotive":         "ms_consumer_cyclical",
	"auto":               "ms_consumer_cyclical",
}

type Screener interface {
	ScreenerSymbols(ctx context.Context, screenerID string, count int) ([]string, error)
}

type SectorDirectory struct {
	screener  Screener
	screeners map[string]string
}

// NewSectorDirectory starts from the built-in aliases; extra entries override
// or extend them.
func NewSectorDirectory(screener Screener, extra map[string]string) *SectorDirectory {
	screeners := make(map[string]string, len(defaultScreeners)+len(extra))
	for k, v := range defaultScreeners {
		screeners[k] = v
	}
	for k, v := range extra {
		screeners[normalizeLabel(k)] = v
	}
	return &SectorDirectory{screener: screener, screeners: screeners}
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ScreenerID resolves a sector label, ignoring case and surrounding space.
func (d *SectorDirectory) ScreenerID(label string) (string, bool) {
	id, ok := d.screeners[normalizeLabel(label)]
	return id, ok
}

// Sectors returns the recognized labels, sorted.
func (d *SectorDirectory) Sectors() []string {
	labels := make([]string, 0, len(d.screeners))
	for k := range d.screeners {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Tickers returns up to max symbols for label. Unknown labels return
// ErrUnsupportedSector; a recognized sector with no screener data returns nil.
func (d *SectorDirectory) Tickers(ctx context.Context, label string, max int) ([]string, error) {
	id, ok := d.ScreenerID(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSector, label)
	}
	if max <= 0 {
		max = DefaultSectorCount
	}

	slog.Info("retrieving sector stocks", "sector", label, "screener", id)

	symbols, err := d.screener.ScreenerSymbols(ctx, id, max)
	if err != nil {
		slog.Warn("sector screener returned no data", "sector", label, "screener", id, "error", err)
		return nil, nil
	}
	if len(symbols) > max {
		symbols = symbols[:max]
	}

	slog.Info("found sector stocks", "sector", label, "count", len(symbols), "tickers", strings.Join(symbols, ","))
	return symbols, nil
}

// LoadSectorAliases reads a YAML mapping of sector label to screener id.
func LoadSectorAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sectors file: %w", err)
	}

	var aliases map[string]string
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("parse sectors file: %w", err)
	}
	return aliases, nil
}
