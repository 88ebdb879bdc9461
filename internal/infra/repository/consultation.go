package repository

import (
	"context"

	"lookup-service/internal/infra"
	"lookup-service/internal/infra/db"
	"lookup-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type ConsultationRepository struct {
	db db.DBTX
}

func NewConsultationRepository(db db.DBTX) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

const insertConsultationSQL = `
INSERT INTO consultations (
	id, user_id, identifier, operation_type, cost, status,
	result_payload, balance_pool_used, poll_attempts, needs_reconciliation, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

// Create persists the immutable audit entry. Rows are never updated or
// deleted by this service.
func (r *ConsultationRepository) Create(ctx context.Context, c commands.NewConsultation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertConsultationSQL,
		uuid.New(),
		c.UserID,
		c.Identifier,
		c.OperationType,
		c.Cost.StringFixed(2),
		c.Status,
		c.ResultPayload,
		string(c.PoolUsed),
		c.PollAttempts,
		c.NeedsReconciliation,
		c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert consultation record", err)
	}
	return id, nil
}
