package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
)

// ExchangeRepositoryGORM implements the exchange quote store using GORM
type ExchangeRepositoryGORM struct {
	db *gorm.DB
}

// NewExchangeRepository creates a new GORM-based exchange repository
func NewExchangeRepository(db *gorm.DB) *ExchangeRepositoryGORM {
	return &ExchangeRepositoryGORM{db: db}
}

// FindByCode retrieves one quote by its composite code (e.g. "RAT.AI1")
func (r *ExchangeRepositoryGORM) FindByCode(ctx context.Context, compositeCode string) (*exchange.Quote, error) {
	var model ExchangeModel
	err := r.db.WithContext(ctx).First(&model, "ticker_id = ?", compositeCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, exchange.ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote %s: %w", compositeCode, err)
	}

	return quoteToDomain(&model), nil
}

// FindAll retrieves the full quote snapshot
func (r *ExchangeRepositoryGORM) FindAll(ctx context.Context) ([]*exchange.Quote, error) {
	var models []ExchangeModel
	err := r.db.WithContext(ctx).Order("ticker_id").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	quotes := make([]*exchange.Quote, len(models))
	for i := range models {
		quotes[i] = quoteToDomain(&models[i])
	}
	return quotes, nil
}

func quoteToDomain(model *ExchangeModel) *exchange.Quote {
	return &exchange.Quote{
		TickerID:       model.TickerID,
		MaterialTicker: model.MaterialTicker,
		ExchangeCode:   model.ExchangeCode,
		Ask:            model.Ask,
		Bid:            model.Bid,
		PriceAverage:   model.PriceAverage,
		Supply:         model.Supply,
		Demand:         model.Demand,
	}
}
