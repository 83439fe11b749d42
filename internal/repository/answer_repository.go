package repository

import (
	"database/sql"

	"stockassistant/internal/model"
)

const answerSchema = `
	CREATE TABLE IF NOT EXISTS answer_log (
		id            BIGSERIAL PRIMARY KEY,
		question      TEXT NOT NULL,
		question_type TEXT NOT NULL DEFAULT '',
		response      TEXT NOT NULL,
		failure       TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type AnswerRepository struct {
	db *sql.DB
}

func NewAnswerRepository(db *sql.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) EnsureSchema() error {
	_, err := r.db.Exec(answerSchema)
	return err
}

func (r *AnswerRepository) SaveAnswer(answer *model.Answer) error {
	return r.db.QueryRow(`
		INSERT INTO answer_log(question, question_type, response, failure)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at
	`, answer.Question, answer.QuestionType, answer.Response, answer.Failure).Scan(&answer.ID, &answer.CreatedAt)
}

func (r *AnswerRepository) GetAnswers(limit, offset int) ([]model.Answer, error) {
	rows, err := r.db.Query(`
		SELECT id, question, question_type, response, failure, created_at
		FROM answer_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []model.Answer
	for rows.Next() {
		var a model.Answer
		err := rows.Scan(&a.ID, &a.Question, &a.QuestionType, &a.Response, &a.Failure, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return answers, nil
}

func (r *AnswerRepository) GetAnswerTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM answer_log`).Scan(&total)
	return total, err
}
