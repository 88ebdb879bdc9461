package commands

import (
	"context"

	"lookup-service/internal/domain/pricing"
	"lookup-service/internal/infra"
	"lookup-service/internal/pkg/clock"
	"lookup-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// PricingEngine resolves the chargeable price of one operation: base price
// from remote module configuration, discount from the active subscription
// entitlement. No silent fallback on a missing price; under- or over-charging
// is worse than a retryable error.
type PricingEngine interface {
	Resolve(ctx context.Context, operationType string, userID uuid.UUID) (*pricing.Quote, error)
}

type pricingEngineImpl struct {
	pricingRepo      PricingRepository
	subscriptionRepo SubscriptionRepository
	clock            clock.Clock
}

func NewPricingEngine(
	pricingRepo PricingRepository,
	subscriptionRepo SubscriptionRepository,
	clock clock.Clock,
) PricingEngine {
	return &pricingEngineImpl{
		pricingRepo:      pricingRepo,
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
	}
}

func (e *pricingEngineImpl) Resolve(ctx context.Context, operationType string, userID uuid.UUID) (*pricing.Quote, error) {
	snapshot, err := e.pricingRepo.FindByOperationType(ctx, operationType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPricingUnavailable)
		}
		return nil, errs.Wrap(err, "failed to resolve module pricing")
	}
	if !snapshot.BasePrice.IsPositive() {
		return nil, errs.Mark(errs.New("non-positive base price configured"), errs.ErrPricingUnavailable)
	}

	discount, err := e.resolveDiscount(ctx, userID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.NewQuote(operationType, snapshot.BasePrice, discount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPricingUnavailable)
	}
	return quote, nil
}

func (e *pricingEngineImpl) resolveDiscount(ctx context.Context, userID uuid.UUID) (int, error) {
	subscription, err := e.subscriptionRepo.FindActiveByUserID(ctx, userID, e.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to resolve subscription entitlement")
	}
	return subscription.DiscountPercent, nil
}
