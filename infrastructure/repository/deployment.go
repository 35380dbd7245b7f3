package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-launcher-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

const deploymentsTable = "deployments"

var deploymentColumns = []string{
	"id",
	"namespace",
	"business_name",
	"ad_account_id",
	"strategy_id",
	"status",
	"campaign_ids",
	"ads_created",
	"failed_ads",
	"error",
	"created_at",
}

//go:generate mockgen -source=deployment.go -destination=mocks/mock_deployment.go -package=mocks

type DeploymentRepository interface {
	Save(ctx context.Context, record *domain.DeploymentRecord) error
	ListByNamespace(ctx context.Context, namespace string, limit int) ([]*domain.DeploymentRecord, error)
	// ListFlagged devolve os deploys com um dos status informados criados a partir de since
	ListFlagged(ctx context.Context, since time.Time, statuses []domain.DeploymentStatus) ([]*domain.DeploymentRecord, error)
}

type deploymentRepository struct {
	conn postgres.Queryer
}

func NewDeploymentRepository(conn postgres.Queryer) DeploymentRepository {
	return &deploymentRepository{
		conn: conn,
	}
}

func (r *deploymentRepository) Save(ctx context.Context, record *domain.DeploymentRecord) error {
	sqlQuery, args, err := buildInsertDeployment(record)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *deploymentRepository) ListByNamespace(ctx context.Context, namespace string, limit int) ([]*domain.DeploymentRecord, error) {
	sqlQuery, args, err := buildListByNamespace(namespace, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, sqlQuery, args)
}

func (r *deploymentRepository) ListFlagged(ctx context.Context, since time.Time, statuses []domain.DeploymentStatus) ([]*domain.DeploymentRecord, error) {
	if len(statuses) == 0 {
		return []*domain.DeploymentRecord{}, nil
	}

	sqlQuery, args, err := buildListFlagged(since, statuses)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, sqlQuery, args)
}

func (r *deploymentRepository) query(ctx context.Context, sqlQuery string, args []interface{}) ([]*domain.DeploymentRecord, error) {
	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.DeploymentRecord{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.DeploymentRecord, 0)
	for rows.Next() {
		record, err := deserializeDeployment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar o deploy: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return records, nil
}

func deserializeDeployment(rows *sql.Rows) (*domain.DeploymentRecord, error) {
	record := &domain.DeploymentRecord{}
	var status string

	if err := rows.Scan(
		&record.ID,
		&record.Namespace,
		&record.BusinessName,
		&record.AdAccountID,
		&record.StrategyID,
		&status,
		pq.Array(&record.CampaignIDs),
		&record.AdsCreated,
		pq.Array(&record.FailedAds),
		&record.Error,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}
	record.Status = domain.DeploymentStatus(status)

	return record, nil
}

func buildInsertDeployment(record *domain.DeploymentRecord) (string, []interface{}, error) {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return squirrel.StatementBuilder.
		Insert(deploymentsTable).
		Columns(deploymentColumns...).
		Values(
			record.ID,
			record.Namespace,
			record.BusinessName,
			record.AdAccountID,
			record.StrategyID,
			string(record.Status),
			pq.Array(nonNil(record.CampaignIDs)),
			record.AdsCreated,
			pq.Array(nonNil(record.FailedAds)),
			record.Error,
			createdAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListByNamespace(namespace string, limit int) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(deploymentColumns...).
		From(deploymentsTable).
		Where(squirrel.Eq{"namespace": namespace}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return queryBuilder.ToSql()
}

func buildListFlagged(since time.Time, statuses []domain.DeploymentStatus) (string, []interface{}, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return squirrel.
		Select(deploymentColumns...).
		From(deploymentsTable).
		Where(squirrel.Eq{"status": values}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// nonNil evita gravar NULL em colunas TEXT[] NOT NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
