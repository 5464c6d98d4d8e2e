package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/infrastructure/backup"
	"github.com/vfg2006/store-indicators-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-indicators-api/infrastructure/ingestion"
	"github.com/vfg2006/store-indicators-api/infrastructure/mailer"
	"github.com/vfg2006/store-indicators-api/infrastructure/render"
	"github.com/vfg2006/store-indicators-api/infrastructure/repository"
	"github.com/vfg2006/store-indicators-api/internal/api"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/scheduler"
	"github.com/vfg2006/store-indicators-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-indicators-api/internal/usecases/evaluating"
	"github.com/vfg2006/store-indicators-api/internal/usecases/ranking"
	"github.com/vfg2006/store-indicators-api/internal/usecases/reporting"
	"github.com/vfg2006/store-indicators-api/internal/usecases/resolving"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	rankingHistoryRepo := repository.NewRankingHistoryRepository(pgConn)
	reportRunRepo := repository.NewReportRunRepository(pgConn)

	// Colaboradores de entrada e saída do pipeline
	salesLoader := ingestion.NewSpreadsheetLoader(cfg.Ingestion)
	rosterLoader := ingestion.NewRosterFileLoader(cfg.Ingestion)

	htmlRenderer, err := render.NewHTMLRenderer()
	if err != nil {
		logrus.Fatal(err)
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	backupWriter := backup.NewFileWriter(cfg.ReportSync.BackupDir)

	// Motor de indicadores
	dateResolver := resolving.NewService()
	indicatorAggregator := aggregating.NewService()
	goalEvaluator := evaluating.NewService(cfg.Goals)
	rankingBuilder := ranking.NewBuilder()

	reportService := reporting.NewService(
		salesLoader,
		rosterLoader,
		dateResolver,
		indicatorAggregator,
		goalEvaluator,
		rankingBuilder,
		htmlRenderer,
		smtpMailer,
		backupWriter,
		rankingHistoryRepo,
		reportRunRepo,
	)

	rankingService := ranking.NewStoreRankingService(rankingHistoryRepo)

	// Inicializa o agendador da geração diária de relatórios
	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de geração de relatórios")
	} else {
		logrus.Info("Agendador de geração de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		rankingService,
		reportRunRepo,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
