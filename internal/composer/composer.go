package composer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"stockassistant/internal/model"
	"stockassistant/pkg/llm"

	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

type Composer struct {
	llm llm.Completer
	now func() time.Time
}

func New(completer llm.Completer) *Composer {
	return &Composer{llm: completer, now: time.Now}
}

func (c *Composer) timestamp() string {
	return c.now().Format(timestampLayout)
}

// Facts renders a price lookup without calling the LLM.
func (c *Composer) Facts(snap *model.MarketSnapshot) string {
	return fmt.Sprintf(`📊 **%s (%s)**

💰 Current Price: %s
📈 30-Day High: %s
📉 30-Day Low: %s
📊 30-Day Change: %s

📡 Source: %s
_Retrieved at %s_`,
		snap.CompanyName, snap.Ticker,
		money(snap.CurrentPrice),
		money(snap.PeriodHigh),
		money(snap.PeriodLow),
		percent(snap.PeriodChangePct),
		snap.Source,
		c.timestamp(),
	)
}

// Analysis asks the LLM to interpret the snapshot and, when given, the news.
func (c *Composer) Analysis(ctx context.Context, snap *model.MarketSnapshot, bundle *model.NewsBundle, question string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nQuestion: %s\n\n%s", analysisContext(snap, bundle), question, analysisInstruction)

	narrative, err := c.llm.Complete(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("analysis: %w", err)
	}

	sources := []string{snap.Source}
	if bundle != nil {
		sources = append(sources, bundle.Source)
	}
	sources = append(sources, c.llm.Name())

	return fmt.Sprintf(`📊 **%s (%s) - Analysis**

%s

---
📈 Stats: %s | 30-Day: %s
📡 Sources: %s
_Generated at %s_`,
		snap.CompanyName, snap.Ticker,
		narrative,
		money(snap.CurrentPrice), percent(snap.PeriodChangePct),
		strings.Join(sources, ", "),
		c.timestamp(),
	), nil
}

func analysisContext(snap *model.MarketSnapshot, bundle *model.NewsBundle) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stock: %s (%s)\n", snap.CompanyName, snap.Ticker))
	sb.WriteString(fmt.Sprintf("Current: %s\n", money(snap.CurrentPrice)))
	sb.WriteString(fmt.Sprintf("30-Day High/Low: %s / %s\n", money(snap.PeriodHigh), money(snap.PeriodLow)))
	sb.WriteString(fmt.Sprintf("30-Day Average: %s\n", money(snap.PeriodAvg)))
	sb.WriteString(fmt.Sprintf("30-Day Change: %s\n", percent(snap.PeriodChangePct)))

	if bundle != nil && len(bundle.Articles) > 0 {
		sb.WriteString("\nRecent News:\n")
		for i, a := range bundle.Articles {
			sb.WriteString(fmt.Sprintf("%d. %s", i+1, a.Title))
			if a.Sentiment != "" {
				sb.WriteString(fmt.Sprintf(" (Sentiment: %s)", a.Sentiment))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Sector ranks snapshots by 30-day change and asks the LLM to answer the
// question against that list.
func (c *Composer) Sector(ctx context.Context, sector string, snaps []*model.MarketSnapshot, question string) (string, error) {
	ranked := RankByChange(snaps)
	title := TitleCase(sector)

	var list strings.Builder
	for _, s := range ranked {
		list.WriteString(fmt.Sprintf("\n- %s (%s): %s", s.Ticker, s.CompanyName, percent(s.PeriodChangePct)))
	}

	prompt := fmt.Sprintf("Sector: %s\nStocks:%s\n\nQuestion: %s\n\n%s", title, list.String(), question, sectorInstruction)

	analysis, err := c.llm.Complete(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: sectorTemperature,
		MaxTokens:   sectorMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("sector analysis: %w", err)
	}

	sources := append(distinctSources(ranked), c.llm.Name())

	return fmt.Sprintf(`🏢 **%s Sector**

%s

📡 Sources: %s
_Generated at %s_`,
		title,
		analysis,
		strings.Join(sources, ", "),
		c.timestamp(),
	), nil
}

// General answers a question with no market data attached.
func (c *Composer) General(ctx context.Context, question string) (string, error) {
	answer, err := c.llm.Complete(ctx, llm.Request{
		Prompt:      fmt.Sprintf(generalPrompt, question),
		Temperature: generalTemperature,
		MaxTokens:   generalMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("general answer: %w", err)
	}

	return fmt.Sprintf(`%s

📚 Source: %s
_Generated at %s_`, answer, c.llm.Name(), c.timestamp()), nil
}

// RankByChange returns a copy of snaps sorted by 30-day change, best first.
func RankByChange(snaps []*model.MarketSnapshot) []*model.MarketSnapshot {
	ranked := make([]*model.MarketSnapshot, len(snaps))
	copy(ranked, snaps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PeriodChangePct.GreaterThan(ranked[j].PeriodChangePct)
	})
	return ranked
}

func distinctSources(snaps []*model.MarketSnapshot) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range snaps {
		if !seen[s.Source] {
			seen[s.Source] = true
			out = append(out, s.Source)
		}
	}
	return out
}

// TitleCase turns "real_estate" into "Real Estate".
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// percent matches printf's %+.2f.
func percent(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}
