package readstore

import (
	"context"
	"errors"

	"lookup-service/internal/infra"
	"lookup-service/internal/infra/db"
	"lookup-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ConsultationReadStore struct {
	db db.DBTX
}

func NewConsultationReadStore(db db.DBTX) *ConsultationReadStore {
	return &ConsultationReadStore{db: db}
}

const findConsultationByIDSQL = `
SELECT id, user_id, identifier, operation_type, cost::text, status,
       result_payload, balance_pool_used, poll_attempts, needs_reconciliation, created_at
FROM consultations
WHERE id = $1`

func (s *ConsultationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConsultationView, error) {
	var (
		view    queries.ConsultationView
		costRaw string
	)
	err := s.db.QueryRow(ctx, findConsultationByIDSQL, id).Scan(
		&view.ID,
		&view.UserID,
		&view.Identifier,
		&view.OperationType,
		&costRaw,
		&view.Status,
		&view.ResultPayload,
		&view.PoolUsed,
		&view.PollAttempts,
		&view.NeedsReconciliation,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("consultation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find consultation by id", err)
	}

	cost, err := decimal.NewFromString(costRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cost value in consultation row", err)
	}
	view.Cost = cost

	return &view, nil
}

const listConsultationsByUserSQL = `
SELECT id, identifier, operation_type, cost::text, status, balance_pool_used, created_at
FROM consultations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

func (s *ConsultationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.ConsultationListItem, error) {
	rows, err := s.db.Query(ctx, listConsultationsByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list consultations by user", err)
	}
	defer rows.Close()

	items := make([]*queries.ConsultationListItem, 0)
	for rows.Next() {
		var (
			item    queries.ConsultationListItem
			costRaw string
		)
		if err := rows.Scan(
			&item.ID,
			&item.Identifier,
			&item.OperationType,
			&costRaw,
			&item.Status,
			&item.PoolUsed,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan consultation row", err)
		}
		cost, err := decimal.NewFromString(costRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid cost value in consultation row", err)
		}
		item.Cost = cost
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate consultation rows", err)
	}

	return items, nil
}
