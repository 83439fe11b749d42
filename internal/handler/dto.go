package handler

type AskRequest struct {
	Question string `json:"question"`
}

type IntentResponse struct {
	QuestionType  string   `json:"question_type"`
	Companies     []string `json:"companies"`
	Tickers       []string `json:"tickers"`
	Sectors       []string `json:"sectors"`
	MainEntity    string   `json:"main_entity"`
	NeedsAnalysis bool     `json:"needs_analysis"`
	NeedsNews     bool     `json:"needs_news"`
}

type AskResponse struct {
	Question string          `json:"question"`
	Response string          `json:"response"`
	Failure  string          `json:"failure,omitempty"`
	Intent   *IntentResponse `json:"intent,omitempty"`
}

type SectorsResponse struct {
	Sectors []string `json:"sectors"`
}

type AnswerResponse struct {
	ID           int64  `json:"id"`
	Question     string `json:"question"`
	QuestionType string `json:"question_type"`
	Response     string `json:"response"`
	Failure      string `json:"failure"`
	CreatedAt    string `json:"created_at"`
}

type AnswersResponse struct {
	Answers []AnswerResponse `json:"answers"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}
