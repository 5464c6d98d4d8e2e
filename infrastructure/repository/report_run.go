package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/store-indicators-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

const (
	reportRunsTable = "report_runs rr"
)

//go:generate mockgen -source=report_run.go -destination=mocks/report_run_mock.go -package=mocks

type ReportRunRepository interface {
	Save(run *domain.ReportRun) error
	GetLastRun() (*domain.ReportRun, error)
}

type reportRunRepository struct {
	conn *postgres.Connection
}

func NewReportRunRepository(conn *postgres.Connection) ReportRunRepository {
	return &reportRunRepository{
		conn: conn,
	}
}

func (r *reportRunRepository) Save(run *domain.ReportRun) error {
	query := squirrel.StatementBuilder.
		Insert("report_runs").
		Columns("id", "reference_date", "status", "snapshot_count", "reports_sent", "error_message", "started_at", "completed_at").
		Values(
			run.ID,
			run.ReferenceDate.Format(time.DateOnly),
			run.Status,
			run.SnapshotCount,
			run.ReportsSent,
			run.ErrorMessage,
			run.StartedAt,
			run.CompletedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *reportRunRepository) GetLastRun() (*domain.ReportRun, error) {
	query, args, err := squirrel.
		Select("rr.id, rr.reference_date, rr.status, rr.snapshot_count, rr.reports_sent, rr.error_message, rr.started_at, rr.completed_at").
		From(reportRunsTable).
		OrderBy("rr.started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	run := &domain.ReportRun{}
	err = row.Scan(
		&run.ID,
		&run.ReferenceDate,
		&run.Status,
		&run.SnapshotCount,
		&run.ReportsSent,
		&run.ErrorMessage,
		&run.StartedAt,
		&run.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução de relatório: %w", err)
	}

	return run, nil
}
