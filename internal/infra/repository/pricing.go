package repository

import (
	"context"
	"errors"
	"time"

	"lookup-service/internal/infra"
	"lookup-service/internal/infra/db"
	"lookup-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PricingRepository reads the remote module configuration table that maps an
// operation type to its base price.
type PricingRepository struct {
	db db.DBTX
}

func NewPricingRepository(db db.DBTX) *PricingRepository {
	return &PricingRepository{db: db}
}

const findPricingSQL = `
SELECT operation_type, base_price::text
FROM module_pricing
WHERE operation_type = $1 AND active`

func (r *PricingRepository) FindByOperationType(ctx context.Context, operationType string) (*commands.PricingSnapshot, error) {
	var (
		snapshot commands.PricingSnapshot
		priceRaw string
	)
	err := r.db.QueryRow(ctx, findPricingSQL, operationType).Scan(&snapshot.OperationType, &priceRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("module pricing not configured", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find module pricing", err)
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid base price value", err)
	}
	snapshot.BasePrice = price

	return &snapshot, nil
}

type SubscriptionRepository struct {
	db db.DBTX
}

func NewSubscriptionRepository(db db.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const findActiveSubscriptionSQL = `
SELECT id, user_id, discount_percent, expires_at
FROM user_subscriptions
WHERE user_id = $1 AND active AND (expires_at IS NULL OR expires_at > $2)
ORDER BY discount_percent DESC
LIMIT 1`

func (r *SubscriptionRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID, at time.Time) (*commands.SubscriptionSnapshot, error) {
	var snapshot commands.SubscriptionSnapshot
	err := r.db.QueryRow(ctx, findActiveSubscriptionSQL, userID, at).Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.DiscountPercent,
		&snapshot.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active subscription", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active subscription", err)
	}
	return &snapshot, nil
}
