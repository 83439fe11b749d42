package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"stockassistant/internal/composer"
	"stockassistant/internal/model"
	"stockassistant/internal/resolver"

	"golang.org/x/time/rate"
)

type FailureKind string

const (
	FailureNone            FailureKind = ""
	FailureExtraction      FailureKind = "extraction"
	FailureResolution      FailureKind = "resolution"
	FailureDataUnavailable FailureKind = "data_unavailable"
	FailureComposition     FailureKind = "composition"
)

const (
	DefaultSectorCount = resolver.DefaultSectorCount
	DefaultSectorDelay = 500 * time.Millisecond
)

type IntentExtractor interface {
	Extract(ctx context.Context, question string) (model.Intent, error)
}

type TickerResolver interface {
	Resolve(ctx context.Context, company string) (string, bool)
}

type SectorDirectory interface {
	Tickers(ctx context.Context, label string, max int) ([]string, error)
	Sectors() []string
}

type SnapshotProvider interface {
	Snapshot(ctx context.Context, ticker string) (*model.MarketSnapshot, bool)
}

type NewsProvider interface {
	Bundle(ctx context.Context, ticker string) (*model.NewsBundle, bool)
}

type AnswerLog interface {
	SaveAnswer(answer *model.Answer) error
}

// Result is the outcome of one question. Message is always user-facing.
type Result struct {
	Intent  *model.Intent
	Failure FailureKind
	Message string
}

type Assistant struct {
	extractor   IntentExtractor
	tickers     TickerResolver
	sectors     SectorDirectory
	market      SnapshotProvider
	news        NewsProvider
	composer    *composer.Composer
	answers     AnswerLog
	sectorCount int
	sectorDelay time.Duration
}

type Option func(*Assistant)

func WithSectorCount(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.sectorCount = n
		}
	}
}

// WithSectorDelay sets the pause between the end of one per-ticker fetch and
// the start of the next in sector mode.
func WithSectorDelay(d time.Duration) Option {
	return func(a *Assistant) {
		if d >= 0 {
			a.sectorDelay = d
		}
	}
}

func WithAnswerLog(log AnswerLog) Option {
	return func(a *Assistant) {
		a.answers = log
	}
}

func New(
	extractor IntentExtractor,
	tickers TickerResolver,
	sectors SectorDirectory,
	market SnapshotProvider,
	news NewsProvider,
	comp *composer.Composer,
	opts ...Option,
) *Assistant {
	a := &Assistant{
		extractor:   extractor,
		tickers:     tickers,
		sectors:     sectors,
		market:      market,
		news:        news,
		composer:    comp,
		sectorCount: DefaultSectorCount,
		sectorDelay: DefaultSectorDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Process answers question and returns the formatted response.
func (a *Assistant) Process(ctx context.Context, question string) string {
	return a.Ask(ctx, question).Message
}

// Ask runs extraction, resolution, retrieval and composition in sequence.
// A blank question returns an empty Result without any upstream call.
func (a *Assistant) Ask(ctx context.Context, question string) Result {
	if strings.TrimSpace(question) == "" {
		return Result{}
	}

	res := a.route(ctx, question)
	a.record(question, res)
	return res
}

func (a *Assistant) route(ctx context.Context, question string) Result {
	intent, err := a.extractor.Extract(ctx, question)
	if err != nil {
		slog.Error("error extracting intent", "error", err)
		return Result{Failure: FailureExtraction, Message: composer.MsgCannotUnderstand}
	}

	var res Result
	switch intent.QuestionType {
	case model.QuestionStockSpecific:
		res = a.answerStock(ctx, intent, question)
	case model.QuestionSector:
		res = a.answerSector(ctx, intent, question)
	default:
		res = a.answerGeneral(ctx, question)
	}
	res.Intent = &intent
	return res
}

func (a *Assistant) answerStock(ctx context.Context, intent model.Intent, question string) Result {
	ticker := ""
	if len(intent.Tickers) > 0 {
		ticker = strings.ToUpper(strings.TrimSpace(intent.Tickers[0]))
	}
	if ticker == "" && len(intent.Companies) > 0 {
		ticker, _ = a.tickers.Resolve(ctx, intent.Companies[0])
	}
	if ticker == "" {
		entity := intent.MainEntity
		if entity == "" && len(intent.Companies) > 0 {
			entity = intent.Companies[0]
		}
		return Result{Failure: FailureResolution, Message: composer.TickerNotFound(entity)}
	}

	snap, ok := a.market.Snapshot(ctx, ticker)
	if !ok {
		return Result{Failure: FailureDataUnavailable, Message: composer.DataUnavailable(ticker)}
	}

	if !intent.NeedsAnalysis {
		return Result{Message: a.composer.Facts(snap)}
	}

	var bundle *model.NewsBundle
	if intent.NeedsNews {
		if b, ok := a.news.Bundle(ctx, ticker); ok {
			bundle = b
		}
	}

	msg, err := a.composer.Analysis(ctx, snap, bundle, question)
	if err != nil {
		slog.Error("error composing analysis", "ticker", ticker, "error", err)
		return Result{Failure: FailureComposition, Message: composer.MsgProcessing}
	}
	return Result{Message: msg}
}

func (a *Assistant) answerSector(ctx context.Context, intent model.Intent, question string) Result {
	sector := intent.MainEntity
	if len(intent.Sectors) > 0 {
		sector = intent.Sectors[0]
	}

	tickers, err := a.sectors.Tickers(ctx, sector, a.sectorCount)
	if errors.Is(err, resolver.ErrUnsupportedSector) {
		return Result{Failure: FailureResolution, Message: composer.UnsupportedSector(sector, a.sectors.Sectors())}
	}
	if err != nil || len(tickers) == 0 {
		return Result{Failure: FailureResolution, Message: composer.SectorNotFound(sector, a.sectors.Sectors())}
	}

	var snaps []*model.MarketSnapshot
	var gap *rate.Limiter
	for _, t := range tickers {
		if gap != nil {
			if err := gap.Wait(ctx); err != nil {
				break
			}
		}
		snap, ok := a.market.Snapshot(ctx, t)
		gap = pauseFrom(a.sectorDelay)
		if !ok {
			slog.Warn("skipping sector ticker without data", "sector", sector, "ticker", t)
			continue
		}
		snaps = append(snaps, snap)
	}

	if len(snaps) == 0 {
		return Result{Failure: FailureDataUnavailable, Message: composer.MsgSectorData}
	}

	msg, err := a.composer.Sector(ctx, sector, snaps, question)
	if err != nil {
		slog.Error("error composing sector answer", "sector", sector, "error", err)
		return Result{Failure: FailureComposition, Message: composer.MsgProcessing}
	}
	return Result{Message: msg}
}

// pauseFrom returns a limiter whose next Wait returns d after now. A zero d
// never blocks.
func pauseFrom(d time.Duration) *rate.Limiter {
	limit := rate.Inf
	if d > 0 {
		limit = rate.Every(d)
	}
	l := rate.NewLimiter(limit, 1)
	l.Allow()
	return l
}

func (a *Assistant) answerGeneral(ctx context.Context, question string) Result {
	msg, err := a.composer.General(ctx, question)
	if err != nil {
		slog.Error("error composing general answer", "error", err)
		return Result{Failure: FailureComposition, Message: composer.MsgProcessing}
	}
	return Result{Message: msg}
}

func (a *Assistant) record(question string, res Result) {
	if a.answers == nil {
		return
	}

	answer := &model.Answer{
		Question: question,
		Response: res.Message,
		Failure:  string(res.Failure),
	}
	if res.Intent != nil {
		answer.QuestionType = string(res.Intent.QuestionType)
	}

	if err := a.answers.SaveAnswer(answer); err != nil {
		slog.Error("error saving answer", "error", err)
	}
}
