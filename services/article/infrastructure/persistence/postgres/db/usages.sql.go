// source: usages.sql

package db

import (
	"context"
	"time"
)

const insertUsage = `-- name: InsertUsage :one
INSERT INTO article.usages (article_id, usage_date, used)
VALUES ($1, $2, $3)
RETURNING id, article_id, usage_date, used
`

type InsertUsageParams struct {
	ArticleID int64
	UsageDate time.Time
	Used      int32
}

func (q *Queries) InsertUsage(ctx context.Context, arg InsertUsageParams) (ArticleUsage, error) {
	row := q.db.QueryRowContext(ctx, insertUsage, arg.ArticleID, arg.UsageDate, arg.Used)
	var i ArticleUsage
	err := row.Scan(
		&i.ID,
		&i.ArticleID,
		&i.UsageDate,
		&i.Used,
	)
	return i, err
}

const sumUsageByArticleAndDateRange = `-- name: SumUsageByArticleAndDateRange :many
SELECT usage_date, COALESCE(SUM(used), 0)::bigint AS total
FROM article.usages
WHERE article_id = $1
  AND usage_date BETWEEN $2 AND $3
GROUP BY usage_date
ORDER BY usage_date
`

type SumUsageByArticleAndDateRangeParams struct {
	ArticleID int64
	StartDate time.Time
	EndDate   time.Time
}

type SumUsageByArticleAndDateRangeRow struct {
	UsageDate time.Time
	Total     int64
}

func (q *Queries) SumUsageByArticleAndDateRange(ctx context.Context, arg SumUsageByArticleAndDateRangeParams) ([]SumUsageByArticleAndDateRangeRow, error) {
	rows, err := q.db.QueryContext(ctx, sumUsageByArticleAndDateRange, arg.ArticleID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SumUsageByArticleAndDateRangeRow
	for rows.Next() {
		var i SumUsageByArticleAndDateRangeRow
		if err := rows.Scan(&i.UsageDate, &i.Total); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
