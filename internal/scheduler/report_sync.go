// Package scheduler contém o serviço de agendamento da geração de relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/usecases/reporting"
)

type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento e a execução do pipeline de
// geração de relatórios de indicadores
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	reportService       reporting.ReportGenerator
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportSyncService(
	reportService reporting.ReportGenerator,
	cfg *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule, // Default: 7h da manhã todos os dias
		SyncEnabled:  cfg.ReportSync.SyncEnabled,  // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:     scheduler,
		reportService: reportService,
		config:        syncConfig,
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de geração de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de geração de relatórios")

	// Agendar a geração de relatórios
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReportSync(); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de geração de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReportSync executa uma rodada completa do pipeline, garantindo uma única
// execução por vez
func (s *ReportSyncService) RunReportSync() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Geração de relatórios já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando geração de relatórios de indicadores")

	run, err := s.reportService.GenerateReports()
	if err != nil {
		logrus.WithError(err).Error("Erro na geração de relatórios de indicadores")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":       run.ID,
		"snapshots":    run.SnapshotCount,
		"reports_sent": run.ReportsSent,
	}).Info("Geração de relatórios de indicadores concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma geração de relatórios
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios")
	go func() {
		if err := s.RunReportSync(); err != nil {
			logrus.WithError(err).Error("Erro na geração manual de relatórios")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
