// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-indicators-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

const (
	rankingHistoryTable = "ranking_history rh"
)

//go:generate mockgen -source=ranking_history.go -destination=mocks/ranking_history_mock.go -package=mocks

type RankingHistoryRepository interface {
	GetLatestRankings() (*domain.RankingTablesResponse, error)
	SaveRankingTables(tables []*domain.RankingTable) error
}

type rankingHistoryRepository struct {
	conn *postgres.Connection
}

func NewRankingHistoryRepository(conn *postgres.Connection) RankingHistoryRepository {
	return &rankingHistoryRepository{
		conn: conn,
	}
}

func (r *rankingHistoryRepository) GetLatestRankings() (*domain.RankingTablesResponse, error) {
	// Buscar apenas a data de referência mais recente persistida
	queryBuilder := squirrel.
		Select(
			"rh.metric",
			"rh.period",
			"rh.reference_date",
			"rh.position",
			"rh.store_id",
			"rh.store_name",
			"rh.value",
			"rh.updated_at",
		).
		From(rankingHistoryTable).
		Where("rh.reference_date = (SELECT MAX(reference_date) FROM ranking_history)").
		OrderBy("rh.metric ASC", "rh.period ASC", "rh.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.RankingTablesResponse{
				Tables:     []*domain.RankingTable{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tablesByKey := make(map[string]*domain.RankingTable)
	ordered := make([]*domain.RankingTable, 0)
	var lastUpdate time.Time

	for rows.Next() {
		var (
			metric        string
			period        string
			referenceDate time.Time
			row           domain.RankingRow
			updatedAt     time.Time
		)

		err := rows.Scan(&metric, &period, &referenceDate, &row.Position, &row.StoreID, &row.StoreName, &row.Value, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
		}

		key := metric + "|" + period
		table, exists := tablesByKey[key]
		if !exists {
			table = &domain.RankingTable{
				Metric:        domain.Metric(metric),
				Period:        domain.Period(period),
				ReferenceDate: referenceDate,
				Rows:          make([]domain.RankingRow, 0),
			}
			tablesByKey[key] = table
			ordered = append(ordered, table)
		}

		table.Rows = append(table.Rows, row)

		if updatedAt.After(lastUpdate) {
			lastUpdate = updatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.RankingTablesResponse{
		Tables:     ordered,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *rankingHistoryRepository) SaveRankingTables(tables []*domain.RankingTable) error {
	for _, table := range tables {
		for _, row := range table.Rows {
			query := squirrel.StatementBuilder.
				Insert("ranking_history").
				Columns("metric", "period", "reference_date", "position", "store_id", "store_name", "value").
				Values(
					string(table.Metric),
					string(table.Period),
					table.ReferenceDate.Format(time.DateOnly),
					row.Position,
					row.StoreID,
					row.StoreName,
					row.Value,
				).
				Suffix(`
					ON CONFLICT (metric, period, reference_date, store_id) DO UPDATE SET
						position = EXCLUDED.position,
						store_name = EXCLUDED.store_name,
						value = EXCLUDED.value,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao salvar ranking %s/%s da loja %d: %w", table.Metric, table.Period, row.StoreID, err)
			}
		}
	}

	return nil
}
