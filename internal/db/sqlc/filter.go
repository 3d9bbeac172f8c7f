package sqlcgen

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// QuestionFilter narrows ListQuestions. The zero value selects every
// question in store order.
type QuestionFilter struct {
	CategoryID *int32
	// Search is matched case-insensitively as a literal substring of the
	// question text.
	Search    *string
	OrderByID bool
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildListQuestions renders the SELECT for filter.
func BuildListQuestions(filter QuestionFilter) (string, []interface{}, error) {
	query := psql.
		Select("id", "question", "answer", "category", "difficulty").
		From("questions")
	if filter.CategoryID != nil {
		query = query.Where(sq.Eq{"category": *filter.CategoryID})
	}
	if filter.Search != nil {
		query = query.Where(sq.ILike{"question": "%" + likeEscaper.Replace(*filter.Search) + "%"})
	}
	if filter.OrderByID {
		query = query.OrderBy("id")
	}
	return query.ToSql()
}

func (q *Queries) ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error) {
	stmt, args, err := BuildListQuestions(filter)
	if err != nil {
		return nil, err
	}
	rows, err := q.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
			&i.Category,
			&i.Difficulty,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
