// source: articles.sql

package db

import (
	"context"
	"database/sql"
)

const deleteArticle = `-- name: DeleteArticle :execrows
DELETE FROM article.articles
WHERE id = $1
`

func (q *Queries) DeleteArticle(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteArticle, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getArticleByID = `-- name: GetArticleByID :one
SELECT id, name, unit, count, icon, description, supplier, price, category
FROM article.articles
WHERE id = $1
`

func (q *Queries) GetArticleByID(ctx context.Context, id int64) (ArticleArticle, error) {
	row := q.db.QueryRowContext(ctx, getArticleByID, id)
	var i ArticleArticle
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Unit,
		&i.Count,
		&i.Icon,
		&i.Description,
		&i.Supplier,
		&i.Price,
		&i.Category,
	)
	return i, err
}

const insertArticle = `-- name: InsertArticle :one
INSERT INTO article.articles (name, unit, count, icon, description, supplier, price, category)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, name, unit, count, icon, description, supplier, price, category
`

type InsertArticleParams struct {
	Name        string
	Unit        string
	Count       int32
	Icon        sql.NullString
	Description sql.NullString
	Supplier    sql.NullString
	Price       sql.NullString
	Category    sql.NullString
}

func (q *Queries) InsertArticle(ctx context.Context, arg InsertArticleParams) (ArticleArticle, error) {
	row := q.db.QueryRowContext(ctx, insertArticle,
		arg.Name,
		arg.Unit,
		arg.Count,
		arg.Icon,
		arg.Description,
		arg.Supplier,
		arg.Price,
		arg.Category,
	)
	var i ArticleArticle
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Unit,
		&i.Count,
		&i.Icon,
		&i.Description,
		&i.Supplier,
		&i.Price,
		&i.Category,
	)
	return i, err
}

const listArticles = `-- name: ListArticles :many
SELECT id, name, unit, count, icon, description, supplier, price, category
FROM article.articles
ORDER BY
    CASE WHEN $1::text = 'name' THEN name END,
    CASE WHEN $1::text = 'unit' THEN unit END,
    CASE WHEN $1::text = 'count' THEN count END,
    id
`

func (q *Queries) ListArticles(ctx context.Context, sort string) ([]ArticleArticle, error) {
	rows, err := q.db.QueryContext(ctx, listArticles, sort)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ArticleArticle
	for rows.Next() {
		var i ArticleArticle
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Unit,
			&i.Count,
			&i.Icon,
			&i.Description,
			&i.Supplier,
			&i.Price,
			&i.Category,
		); err != nil {
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

const updateArticle = `-- name: UpdateArticle :one
UPDATE article.articles
SET name = $2, unit = $3, count = $4, icon = $5, description = $6, supplier = $7, price = $8, category = $9
WHERE id = $1
RETURNING id, name, unit, count, icon, description, supplier, price, category
`

type UpdateArticleParams struct {
	ID          int64
	Name        string
	Unit        string
	Count       int32
	Icon        sql.NullString
	Description sql.NullString
	Supplier    sql.NullString
	Price       sql.NullString
	Category    sql.NullString
}

func (q *Queries) UpdateArticle(ctx context.Context, arg UpdateArticleParams) (ArticleArticle, error) {
	row := q.db.QueryRowContext(ctx, updateArticle,
		arg.ID,
		arg.Name,
		arg.Unit,
		arg.Count,
		arg.Icon,
		arg.Description,
		arg.Supplier,
		arg.Price,
		arg.Category,
	)
	var i ArticleArticle
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Unit,
		&i.Count,
		&i.Icon,
		&i.Description,
		&i.Supplier,
		&i.Price,
		&i.Category,
	)
	return i, err
}
