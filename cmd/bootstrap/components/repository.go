package components

import (
	"lookup-service/internal/infra/db"
	"lookup-service/internal/infra/enrichment"
	"lookup-service/internal/infra/readstore"
	repo_impl "lookup-service/internal/infra/repository"
	"lookup-service/internal/pkg/config"
	"lookup-service/internal/usecase/commands"
	"lookup-service/internal/usecase/queries"
	"lookup-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewRecordRepository,
			fx.As(new(commands.RecordRepository)),
		),
		fx.Annotate(
			repo_impl.NewConsultationRepository,
			fx.As(new(commands.ConsultationRepository)),
		),
		fx.Annotate(
			repo_impl.NewInflightRepository,
			fx.As(new(commands.InflightRepository)),
		),
		fx.Annotate(
			repo_impl.NewPricingRepository,
			fx.As(new(commands.PricingRepository)),
		),
		fx.Annotate(
			repo_impl.NewSubscriptionRepository,
			fx.As(new(commands.SubscriptionRepository)),
		),
		fx.Annotate(
			repo_impl.NewBalanceRepository,
			fx.As(new(shared.BalanceProvider)),
		),
		fx.Annotate(
			NewEnrichmentClient,
			fx.As(new(commands.EnrichmentDispatcher)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewConsultationReadStore,
			fx.As(new(queries.ConsultationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewEnrichmentClient(cfg config.Config) *enrichment.Client {
	return enrichment.NewClient(cfg.Enrichment)
}
