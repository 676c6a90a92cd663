package main

import (
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/config"
)

const (
	idLength   = 10
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS services (
		id VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL DEFAULT 0,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		category TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS providers (
		id VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		commission_rate NUMERIC(5,4) NOT NULL DEFAULT 0,
		birth_date DATE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS partners (
		id VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id VARCHAR(32) PRIMARY KEY,
		partner_id VARCHAR(32) REFERENCES partners(id),
		coupon_code TEXT NOT NULL DEFAULT '',
		discount_type TEXT NOT NULL DEFAULT 'percentage',
		discount_value NUMERIC(12,2) NOT NULL DEFAULT 0,
		use_count INTEGER NOT NULL DEFAULT 0,
		max_uses INTEGER,
		total_revenue NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		acquisition_channel TEXT,
		registration_date DATE,
		birth_date DATE,
		status TEXT NOT NULL DEFAULT 'new',
		assigned_provider_id VARCHAR(32),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32) NOT NULL,
		provider_id VARCHAR(32) NOT NULL,
		service_id VARCHAR(32) NOT NULL,
		date DATE NOT NULL,
		time TIME NOT NULL,
		status TEXT NOT NULL,
		price_paid NUMERIC(12,2),
		booked_price NUMERIC(12,2),
		commission_rate_snapshot NUMERIC(5,4),
		additional_services JSONB,
		coupon_code TEXT,
		discount_amount NUMERIC(12,2),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS bookings_date_idx ON bookings (date)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32),
		date DATE NOT NULL,
		items JSONB,
		total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		payment_method TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS sales_date_idx ON sales (date)`,
	`CREATE TABLE IF NOT EXISTS payment_settings (
		id SERIAL PRIMARY KEY,
		pix_key TEXT,
		accepted_methods TEXT[] NOT NULL DEFAULT '{}',
		card_fee_percent NUMERIC(5,2)
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_revenue (
		id SERIAL PRIMARY KEY,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		booking_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		product_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		commission_total NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT monthly_revenue_year_month_unique UNIQUE (year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS provider_ranking (
		id SERIAL PRIMARY KEY,
		run_id VARCHAR(32) NOT NULL,
		provider_id VARCHAR(32) NOT NULL,
		month VARCHAR(7) NOT NULL,
		provider_name TEXT NOT NULL,
		revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		services_count INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL,
		position_change INTEGER NOT NULL DEFAULT 0,
		previous_position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT provider_ranking_provider_month_unique UNIQUE (provider_id, month)
	)`,
}

type seedService struct {
	Name     string
	Price    float64
	Duration int
	Category string
}

type seedProvider struct {
	Name           string
	CommissionRate float64
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createSchema(db *sql.DB) error {
	startTime := time.Now()

	for i, statement := range schema {
		if _, err := db.Exec(statement); err != nil {
			logrus.WithError(err).WithField("statement", i).Error("Erro ao aplicar schema")
			return err
		}
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Schema aplicado com sucesso")
	return nil
}

// seed cria um catálogo mínimo para desenvolvimento local
func seed(tx *sql.Tx) error {
	services := []seedService{
		{"Corte feminino", 120, 60, "cabelo"},
		{"Escova", 60, 40, "cabelo"},
		{"Manicure", 45, 45, "unhas"},
		{"Coloração", 250, 120, "cabelo"},
	}
	providers := []seedProvider{
		{"Ana", 0.40},
		{"Bruna", 0.35},
		{"Carla", 0.50},
	}

	serviceStmt, err := tx.Prepare(`INSERT INTO services (id, name, price, duration_minutes, category) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return err
	}
	defer serviceStmt.Close()

	for _, s := range services {
		if _, err := serviceStmt.Exec(generateID(), s.Name, s.Price, s.Duration, s.Category); err != nil {
			logrus.WithError(err).WithField("service", s.Name).Error("Erro ao inserir serviço")
			return err
		}
	}

	providerStmt, err := tx.Prepare(`INSERT INTO providers (id, name, commission_rate) VALUES ($1, $2, $3)`)
	if err != nil {
		return err
	}
	defer providerStmt.Close()

	for _, p := range providers {
		if _, err := providerStmt.Exec(generateID(), p.Name, p.CommissionRate); err != nil {
			logrus.WithError(err).WithField("provider", p.Name).Error("Erro ao inserir profissional")
			return err
		}
	}

	_, err = tx.Exec(
		`INSERT INTO payment_settings (pix_key, accepted_methods, card_fee_percent) VALUES ($1, $2, $3)`,
		"salao@exemplo.com",
		pq.Array([]string{"pix", "credit_card", "debit_card", "cash"}),
		2.5,
	)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"services":  len(services),
		"providers": len(providers),
	}).Info("Carga inicial inserida")

	return nil
}

func main() {
	withSeed := flag.Bool("seed", false, "insere um catálogo de exemplo após criar o schema")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Erro ao verificar conexão com o banco")
	}

	if err := createSchema(db); err != nil {
		os.Exit(1)
	}

	if !*withSeed {
		return
	}

	tx, err := db.Begin()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	if err := seed(tx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial, revertendo transação")
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Fatal("Erro ao reverter transação")
		}
		os.Exit(1)
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar transação")
	}

	logrus.Info("Migração concluída")
}
