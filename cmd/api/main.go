package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/api"
	"github.com/vfg2006/salon-manager-api/internal/api/handler"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/scheduler"
	"github.com/vfg2006/salon-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	monthlyRevenueRepo := repository.NewMonthlyRevenueRepository(pgConn)
	providerRankingRepo := repository.NewProviderRankingRepository(pgConn)

	reportingService := reporting.NewService(snapshotRepo, monthlyRevenueRepo, cfg)
	rankingService := ranking.NewProviderRankingService(providerRankingRepo)

	providerRankingSyncService := scheduler.NewProviderRankingService(snapshotRepo, providerRankingRepo, cfg)
	monthlyRevenueSyncService := scheduler.NewMonthlyRevenueSyncService(snapshotRepo, monthlyRevenueRepo, cfg)

	if err := providerRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de profissionais")
	} else {
		logrus.Info("Agendador do ranking de profissionais iniciado com sucesso")
	}

	if err := monthlyRevenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do fechamento mensal de faturamento")
	} else {
		logrus.Info("Agendador do fechamento mensal de faturamento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		rankingService,
		handler.CronJobServices{
			ProviderRankingService: providerRankingSyncService,
			MonthlyRevenueService:  monthlyRevenueSyncService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
