package repository

import (
	"context"
	"time"

	"lookup-service/internal/domain/document"
	"lookup-service/internal/infra"
	"lookup-service/internal/infra/db"

	"github.com/google/uuid"
)

// InflightRepository backs the per-user-per-identifier in-flight guard. A row
// is held for the duration of one attempt; stale rows are reclaimed via the
// expiry column so a crashed attempt cannot wedge its identifier forever.
type InflightRepository struct {
	db db.DBTX
}

func NewInflightRepository(db db.DBTX) *InflightRepository {
	return &InflightRepository{db: db}
}

const acquireInflightSQL = `
INSERT INTO lookup_inflight (user_id, identifier, expires_at, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id, identifier)
DO UPDATE SET expires_at = EXCLUDED.expires_at, created_at = now()
WHERE lookup_inflight.expires_at <= now()`

func (r *InflightRepository) TryAcquire(ctx context.Context, userID uuid.UUID, identifier document.Number, expiresAt time.Time) error {
	tag, err := r.db.Exec(ctx, acquireInflightSQL, userID, identifier.String(), expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire in-flight guard", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lookup already in flight", nil, infra.KindDuplicateKey)
	}
	return nil
}

const releaseInflightSQL = `
DELETE FROM lookup_inflight
WHERE user_id = $1 AND identifier = $2`

func (r *InflightRepository) Release(ctx context.Context, userID uuid.UUID, identifier document.Number) error {
	if _, err := r.db.Exec(ctx, releaseInflightSQL, userID, identifier.String()); err != nil {
		return infra.WrapRepoErr("failed to release in-flight guard", err)
	}
	return nil
}
