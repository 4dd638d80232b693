package db

import (
	"database/sql"
	"time"
)

type ArticleArticle struct {
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

type ArticleUsage struct {
	ID        int64
	ArticleID int64
	UsageDate time.Time
	Used      int32
}
