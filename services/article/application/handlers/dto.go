package handlers

import (
	"reflect"

	pkgvalidator "github.com/ghuser/medsupply/pkg/validator"
	"github.com/ghuser/medsupply/services/article/domain/models"
)

func init() {
	pkgvalidator.RegisterCustomTypeFunc(optionalValue, models.Optional[int]{}, models.Optional[string]{})
}

// optionalValue exposes the wrapped value of a set Optional to the validator;
// unset Optionals validate as nil so omitempty skips them.
func optionalValue(field reflect.Value) any {
	switch o := field.Interface().(type) {
	case models.Optional[int]:
		if v, ok := o.Get(); ok {
			return v
		}
	case models.Optional[string]:
		if v, ok := o.Get(); ok {
			return v
		}
	}
	return nil
}

// ArticleResponse is the JSON representation of an article.
type ArticleResponse struct {
	ID          int64   `json:"id"          example:"1"`
	Name        string  `json:"name"        example:"Gauze"`
	Unit        string  `json:"unit"        example:"box"`
	Count       int     `json:"count"       example:"50"`
	Icon        *string `json:"icon"        example:"bandage"`
	Description *string `json:"description" example:"Sterile gauze compresses 10x10 cm"`
	Supplier    *string `json:"supplier"    example:"Mölnlycke"`
	Price       *string `json:"price"       example:"129 kr"`
	Category    *string `json:"category"    example:"Wound care"`
	Status      string  `json:"status"      example:"Low" enums:"Critical,Low,High"`
} // @name Article

// CreateArticleRequest is the request body for POST /articles.
type CreateArticleRequest struct {
	Name  string `json:"name"  validate:"required,max=255" example:"Gauze"`
	Unit  string `json:"unit"  validate:"required,max=255" example:"box"`
	Count *int   `json:"count" validate:"required,gte=0,lte=2147483647" example:"50"`
} // @name CreateArticleRequest

// PatchArticleRequest is the request body for PATCH /articles/{id}.
// Omitted and null fields leave the stored value unchanged.
type PatchArticleRequest struct {
	Count       models.Optional[int]    `json:"count"       validate:"omitempty,gte=0,lte=2147483647" swaggertype:"integer" example:"30"`
	Icon        models.Optional[string] `json:"icon"                                      swaggertype:"string"  example:"bandage"`
	Description models.Optional[string] `json:"description" validate:"omitempty,max=1000" swaggertype:"string"  example:"Sterile gauze compresses 10x10 cm"`
	Supplier    models.Optional[string] `json:"supplier"                                  swaggertype:"string"  example:"Mölnlycke"`
	Price       models.Optional[string] `json:"price"                                     swaggertype:"string"  example:"129 kr"`
	Category    models.Optional[string] `json:"category"                                  swaggertype:"string"  example:"Wound care"`
} // @name PatchArticleRequest

// DailyUsageResponse is one row of the usage report.
type DailyUsageResponse struct {
	Date  string `json:"date"  example:"2026-10-17"`
	Total int    `json:"total" example:"20"`
} // @name DailyUsage

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"article not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when a request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

func (p *PatchArticleRequest) toPatch() models.ArticlePatch {
	return models.ArticlePatch{
		Count:       p.Count,
		Icon:        p.Icon,
		Description: p.Description,
		Supplier:    p.Supplier,
		Price:       p.Price,
		Category:    p.Category,
	}
}

func toArticleResponse(a *models.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Name:        a.Name,
		Unit:        a.Unit,
		Count:       a.Count,
		Icon:        a.Icon,
		Description: a.Description,
		Supplier:    a.Supplier,
		Price:       a.Price,
		Category:    a.Category,
		Status:      string(a.Status()),
	}
}

func toArticleResponses(articles []*models.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = toArticleResponse(a)
	}
	return out
}

func toDailyUsageResponses(totals []models.DailyUsage) []DailyUsageResponse {
	out := make([]DailyUsageResponse, len(totals))
	for i, d := range totals {
		out[i] = DailyUsageResponse{Date: models.FormatDate(d.Date), Total: d.Total}
	}
	return out
}
