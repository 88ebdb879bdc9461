package repository

import (
	"context"
	"errors"

	"lookup-service/internal/domain/document"
	"lookup-service/internal/infra"
	"lookup-service/internal/infra/db"
	"lookup-service/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
)

// RecordRepository reads the locally cached document records. The enrichment
// process writes into the same table out of band; this side only ever reads.
type RecordRepository struct {
	db db.DBTX
}

func NewRecordRepository(db db.DBTX) *RecordRepository {
	return &RecordRepository{db: db}
}

const findRecordByIdentifierSQL = `
SELECT identifier, payload, fetched_at
FROM document_records
WHERE identifier = $1`

func (r *RecordRepository) FindByIdentifier(ctx context.Context, identifier document.Number) (*commands.RecordSnapshot, error) {
	var snapshot commands.RecordSnapshot
	err := r.db.QueryRow(ctx, findRecordByIdentifierSQL, identifier.String()).
		Scan(&snapshot.Identifier, &snapshot.Payload, &snapshot.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find record by identifier", err)
	}
	return &snapshot, nil
}
