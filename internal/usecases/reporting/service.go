// Package reporting monta os snapshots por loja e orquestra o pipeline de
// geração e distribuição dos relatórios de indicadores
package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/infrastructure/repository"
	"github.com/vfg2006/store-indicators-api/internal/domain"
	"github.com/vfg2006/store-indicators-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-indicators-api/internal/usecases/evaluating"
	"github.com/vfg2006/store-indicators-api/internal/usecases/ranking"
	"github.com/vfg2006/store-indicators-api/internal/usecases/resolving"
	"github.com/vfg2006/store-indicators-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type ReportGenerator interface {
	GenerateReports() (*domain.ReportRun, error)
}

// Service executa o ciclo completo: carrega vendas e cadastro, resolve a data
// de referência, agrega os indicadores, avalia as metas e entrega snapshots e
// rankings aos colaboradores de renderização, backup e envio
type Service struct {
	datasetLoader      DatasetLoader
	rosterLoader       RosterLoader
	resolver           resolving.DateResolver
	aggregator         aggregating.IndicatorAggregator
	evaluator          evaluating.GoalEvaluator
	rankingBuilder     ranking.RankingBuilder
	renderer           Renderer
	mailer             Mailer
	backupWriter       BackupWriter
	rankingHistoryRepo repository.RankingHistoryRepository
	reportRunRepo      repository.ReportRunRepository
}

func NewService(
	datasetLoader DatasetLoader,
	rosterLoader RosterLoader,
	resolver resolving.DateResolver,
	aggregator aggregating.IndicatorAggregator,
	evaluator evaluating.GoalEvaluator,
	rankingBuilder ranking.RankingBuilder,
	renderer Renderer,
	mailer Mailer,
	backupWriter BackupWriter,
	rankingHistoryRepo repository.RankingHistoryRepository,
	reportRunRepo repository.ReportRunRepository,
) ReportGenerator {
	return &Service{
		datasetLoader:      datasetLoader,
		rosterLoader:       rosterLoader,
		resolver:           resolver,
		aggregator:         aggregator,
		evaluator:          evaluator,
		rankingBuilder:     rankingBuilder,
		renderer:           renderer,
		mailer:             mailer,
		backupWriter:       backupWriter,
		rankingHistoryRepo: rankingHistoryRepo,
		reportRunRepo:      reportRunRepo,
	}
}

// GenerateReports executa uma rodada completa de relatórios. Erros de
// carga, resolução de data ou agregação abortam a execução: relatório parcial
// é pior que nenhum relatório. Falhas de entrega por loja são registradas e
// não interrompem as demais.
func (s *Service) GenerateReports() (*domain.ReportRun, error) {
	run := &domain.ReportRun{
		StartedAt: time.Now(),
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}
	run.ID = runID

	logrus.WithField("run_id", run.ID).Info("Iniciando geração de relatórios de indicadores")

	sales, err := s.datasetLoader.LoadSales()
	if err != nil {
		return s.failRun(run, fmt.Errorf("erro ao carregar base de vendas: %w", err))
	}

	roster, err := s.rosterLoader.LoadRoster()
	if err != nil {
		return s.failRun(run, fmt.Errorf("erro ao carregar cadastro de lojas: %w", err))
	}

	reference, err := s.resolver.Resolve(sales)
	if err != nil {
		return s.failRun(run, err)
	}
	run.ReferenceDate = reference.Day

	aggregated := s.aggregator.Aggregate(sales, reference)
	snapshots := BuildSnapshots(aggregated, roster, s.evaluator)
	rankings := s.rankingBuilder.Build(aggregated, roster)

	run.SnapshotCount = len(snapshots)
	run.ReportsSent = s.deliverStoreReports(snapshots)
	run.ReportsSent += s.deliverRankingReport(rankings, reference, roster)

	if err := s.rankingHistoryRepo.SaveRankingTables(rankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar histórico de rankings")
	}

	run.Status = domain.ReportRunStatusCompleted
	run.CompletedAt = time.Now()

	if err := s.reportRunRepo.Save(run); err != nil {
		logrus.WithError(err).Error("Erro ao registrar execução de relatórios")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":         run.ID,
		"reference_date": reference.Day.Format(time.DateOnly),
		"snapshots":      run.SnapshotCount,
		"reports_sent":   run.ReportsSent,
	}).Info("Geração de relatórios de indicadores concluída")

	return run, nil
}

// deliverStoreReports renderiza, grava backup e envia o relatório de cada
// loja com destinatário cadastrado. Retorna o total de envios realizados.
func (s *Service) deliverStoreReports(snapshots []*domain.StoreSnapshot) int {
	sent := 0

	for _, snapshot := range snapshots {
		htmlBody, err := s.renderer.RenderStoreReport(snapshot)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"store_id": snapshot.StoreID,
			}).Error("Erro ao renderizar relatório da loja")
			continue
		}

		if _, err := s.backupWriter.WriteStoreReport(snapshot, htmlBody); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"store_id": snapshot.StoreID,
			}).Error("Erro ao gravar backup do relatório da loja")
		}

		if snapshot.Email == "" {
			logrus.WithFields(logrus.Fields{
				"store_id": snapshot.StoreID,
			}).Warn("Loja sem destinatário cadastrado, relatório não será enviado")
			continue
		}

		subject := fmt.Sprintf(
			"OnePage Dia %s - Loja %s",
			snapshot.ReferenceDate.Format("02/01"),
			snapshot.StoreName,
		)

		if err := s.mailer.Send([]string{snapshot.Email}, subject, htmlBody); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"store_id": snapshot.StoreID,
				"email":    snapshot.Email,
			}).Error("Erro ao enviar relatório da loja")
			continue
		}

		sent++
	}

	return sent
}

// deliverRankingReport envia o relatório de rankings aos destinatários
// corporativos. Retorna o total de envios realizados.
func (s *Service) deliverRankingReport(
	rankings []*domain.RankingTable,
	reference domain.ReportingPeriod,
	roster *domain.Roster,
) int {
	board := roster.BoardRecipients()
	if len(board) == 0 {
		logrus.Info("Nenhum destinatário corporativo cadastrado, ranking não será enviado")
		return 0
	}

	htmlBody, err := s.renderer.RenderRankingReport(rankings, reference)
	if err != nil {
		logrus.WithError(err).Error("Erro ao renderizar relatório de rankings")
		return 0
	}

	subject := fmt.Sprintf("Ranking de Lojas - Dia %s", reference.Day.Format("02/01"))

	sent := 0
	for _, recipient := range board {
		if err := s.mailer.Send([]string{recipient.Email}, subject, htmlBody); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"email": recipient.Email,
			}).Error("Erro ao enviar relatório de rankings")
			continue
		}
		sent++
	}

	return sent
}

// failRun registra a execução como falha e propaga o erro original
func (s *Service) failRun(run *domain.ReportRun, cause error) (*domain.ReportRun, error) {
	run.Status = domain.ReportRunStatusFailed
	run.ErrorMessage = cause.Error()
	run.CompletedAt = time.Now()

	if err := s.reportRunRepo.Save(run); err != nil {
		logrus.WithError(err).Error("Erro ao registrar execução com falha")
	}

	logrus.WithError(cause).WithField("run_id", run.ID).Error("Geração de relatórios abortada")

	return run, cause
}
