package models

import (
	"math"
	"strings"
)

// Stock status thresholds: at or below CriticalStockLevel an article is
// Critical, at or below LowStockLevel it is Low, otherwise High.
const (
	CriticalStockLevel = 30
	LowStockLevel      = 150

	// MaxDescriptionLength bounds Article.Description (column width).
	MaxDescriptionLength = 1000

	// MaxCount is the largest stock count the article.articles INTEGER column holds.
	MaxCount = math.MaxInt32
)

// StockStatus is a coarse, derived view of an article's count.
type StockStatus string

const (
	StockCritical StockStatus = "Critical"
	StockLow      StockStatus = "Low"
	StockHigh     StockStatus = "High"
)

// Article is the core aggregate for this bounded context: one stocked item.
// Descriptive fields are nil when never supplied.
type Article struct {
	ID          int64
	Name        string
	Unit        string
	Count       int
	Icon        *string
	Description *string
	Supplier    *string
	Price       *string
	Category    *string
}

// ArticlePatch is a partial update. Only fields with Set == true are applied.
type ArticlePatch struct {
	Count       Optional[int]
	Icon        Optional[string]
	Description Optional[string]
	Supplier    Optional[string]
	Price       Optional[string]
	Category    Optional[string]
}

// NewArticle constructs an unsaved Article (ID 0) from registration data.
// Name and unit are trimmed; the store assigns the ID on insert.
func NewArticle(name, unit string, count int) *Article {
	return &Article{
		Name:  strings.TrimSpace(name),
		Unit:  strings.TrimSpace(unit),
		Count: count,
	}
}

// ApplyPatch overwrites the fields present in p and leaves all others as they
// were. Count is copied verbatim; clamping is the caller's decision.
func (a *Article) ApplyPatch(p ArticlePatch) {
	if v, ok := p.Count.Get(); ok {
		a.Count = v
	}
	applyString(&a.Icon, p.Icon)
	applyString(&a.Description, p.Description)
	applyString(&a.Supplier, p.Supplier)
	applyString(&a.Price, p.Price)
	applyString(&a.Category, p.Category)
}

// Status derives the StockStatus from Count.
func (a *Article) Status() StockStatus {
	return StatusForCount(a.Count)
}

// Clone returns a deep copy so callers can compare before/after states.
func (a *Article) Clone() *Article {
	c := *a
	c.Icon = cloneString(a.Icon)
	c.Description = cloneString(a.Description)
	c.Supplier = cloneString(a.Supplier)
	c.Price = cloneString(a.Price)
	c.Category = cloneString(a.Category)
	return &c
}

// StatusForCount maps a stock count to its StockStatus.
func StatusForCount(count int) StockStatus {
	switch {
	case count <= CriticalStockLevel:
		return StockCritical
	case count <= LowStockLevel:
		return StockLow
	default:
		return StockHigh
	}
}

func applyString(dst **string, o Optional[string]) {
	if v, ok := o.Get(); ok {
		*dst = &v
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
