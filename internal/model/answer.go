package model

import "time"

type Answer struct {
	ID           int64
	Question     string
	QuestionType string
	Response     string
	Failure      string
	CreatedAt    time.Time
}
