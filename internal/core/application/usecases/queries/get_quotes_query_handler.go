package queries

import (
	"context"
	"log/slog"
	"time"

	"mescolis/internal/core/domain/services"

	"gorm.io/gorm"
)

// quoteAuditTimeout bounds the background insert of a quote audit row.
const quoteAuditTimeout = 5 * time.Second

// GetQuotesQueryHandler computes carrier rates and records an audit row for
// each quote request. The audit insert runs in the background: a customer
// never waits on it, and its failure is only logged.
type GetQuotesQueryHandler struct {
	db         *gorm.DB
	calculator services.RateCalculator
	log        *slog.Logger
}

// NewGetQuotesQueryHandler creates a handler for rate quoting.
func NewGetQuotesQueryHandler(db *gorm.DB, calculator services.RateCalculator, log *slog.Logger) GetQuotesQueryHandler {
	return GetQuotesQueryHandler{db: db, calculator: calculator, log: log}
}

// Handle computes rates for the requested lane, cheapest first.
func (h GetQuotesQueryHandler) Handle(ctx context.Context, query GetQuotesQuery) ([]QuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rates := h.calculator.Calculate(
		query.ShipmentType(), query.WeightKg(), query.FromCountry(), query.ToCountry())

	responses := make([]QuoteResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, QuoteResponse{
			CarrierName:    r.CarrierName,
			ServiceName:    r.ServiceName,
			Price:          r.Price,
			ListPrice:      r.ListPrice,
			Savings:        r.Savings,
			EstimatedDays:  r.EstimatedDays,
			CarrierLogoURL: r.CarrierLogoURL,
		})
	}

	go h.saveAudit(query)

	return responses, nil
}

func (h GetQuotesQueryHandler) saveAudit(query GetQuotesQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), quoteAuditTimeout)
	defer cancel()

	err := h.db.WithContext(ctx).Exec(`
		INSERT INTO shipping_quotes (
			from_postal_code,
			to_postal_code,
			from_country,
			to_country,
			weight_kg,
			length_cm,
			width_cm,
			height_cm,
			type,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		query.FromPostalCode(),
		query.ToPostalCode(),
		query.FromCountry(),
		query.ToCountry(),
		query.WeightKg(),
		query.LengthCm(),
		query.WidthCm(),
		query.HeightCm(),
		int(query.ShipmentType()),
		time.Now().UTC(),
	).Error
	if err != nil {
		h.log.Warn("quote audit insert failed",
			slog.String("from", query.FromPostalCode()),
			slog.String("to", query.ToPostalCode()),
			slog.Any("error", err))
	}
}
