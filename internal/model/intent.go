package model

type QuestionType string

const (
	QuestionStockSpecific QuestionType = "stock_specific"
	QuestionSector        QuestionType = "sector"
	QuestionGeneral       QuestionType = "general"
)

func (q QuestionType) Valid() bool {
	switch q {
	case QuestionStockSpecific, QuestionSector, QuestionGeneral:
		return true
	}
	return false
}

// Intent is the structured reading of one question. Missing entities are
// empty slices, never nil.
type Intent struct {
	QuestionType  QuestionType `json:"question_type"`
	Companies     []string     `json:"companies"`
	Tickers       []string     `json:"tickers"`
	Sectors       []string     `json:"sectors"`
	MainEntity    string       `json:"main_entity"`
	NeedsAnalysis bool         `json:"needs_analysis"`
	NeedsNews     bool         `json:"needs_news"`
}

// Normalize replaces nil entity lists with empty ones.
func (i Intent) Normalize() Intent {
	if i.Companies == nil {
		i.Companies = []string{}
	}
	if i.Tickers == nil {
		i.Tickers = []string{}
	}
	if i.Sectors == nil {
		i.Sectors = []string{}
	}
	return i
}
