package pgsql

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	"github.com/SscSPs/accountbook_service/internal/models"
	"github.com/SscSPs/accountbook_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChartRepository struct {
	BaseRepository
}

func newPgxChartRepository(pool *pgxpool.Pool) portsrepo.ChartRepositoryFacade {
	return &PgxChartRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChartRepositoryFacade = (*PgxChartRepository)(nil)

// LoadChartForest reads the chart rows of system in sort order and links them into a forest.
func (r *PgxChartRepository) LoadChartForest(ctx context.Context, system string) (*domain.ChartNode, error) {
	query := `
		SELECT system, code, COALESCE(c_name, '') AS c_name, e_name,
		       COALESCE(parent_code, '') AS parent_code, sort_order
		FROM chart_nodes
		WHERE system = $1
		ORDER BY sort_order, code;
	`
	rows, err := r.Pool.Query(ctx, query, system)
	if err != nil {
		return nil, translateError(err, "query chart %s", system)
	}
	chartRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartNode])
	if err != nil {
		return nil, translateError(err, "scan chart %s", system)
	}
	return mapping.ToChartForest(chartRows), nil
}

// ListChartSystems returns the accounting systems present in chart_nodes.
func (r *PgxChartRepository) ListChartSystems(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT system FROM chart_nodes ORDER BY system;`)
	if err != nil {
		return nil, translateError(err, "list chart systems")
	}
	systems, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, translateError(err, "scan chart systems")
	}
	return systems, nil
}
