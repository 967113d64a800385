package response

import (
	"time"

	"agenda-web/internal/domain/catalog"
	"agenda-web/internal/pkg/locale"
	"agenda-web/internal/pkg/money"
	"agenda-web/internal/usecase/profile"
)

type BusinessResponse struct {
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Extra map[string]any `json:"extra,omitempty"`
}

type CatalogServiceResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min"`
	Price       int64  `json:"price"`
	PriceLabel  string `json:"price_label"`
}

type ConfigResponse struct {
	BusinessType string                   `json:"business_type"`
	Business     BusinessResponse         `json:"business"`
	Services     []CatalogServiceResponse `json:"services"`
	MinDate      string                   `json:"min_date"`
	MaxDate      string                   `json:"max_date"`
	ClosedDay    string                   `json:"closed_day"`
}

func NewConfigResponse(
	cat *catalog.Catalog,
	f money.Formatter,
	p *profile.Profile,
	minDate, maxDate string,
	closedWeekday time.Weekday,
) *ConfigResponse {
	res := &ConfigResponse{
		BusinessType: string(cat.BusinessType()),
		Business: BusinessResponse{
			Name:  p.Name,
			Email: p.Email,
			Extra: p.Extra,
		},
		Services:  make([]CatalogServiceResponse, 0, len(cat.Options())),
		MinDate:   minDate,
		MaxDate:   maxDate,
		ClosedDay: locale.WeekdayPlural(closedWeekday),
	}
	for _, opt := range cat.Options() {
		res.Services = append(res.Services, CatalogServiceResponse{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			DurationMin: opt.DurationMin,
			Price:       opt.Price,
			PriceLabel:  f.Format(opt.Price),
		})
	}
	return res
}
