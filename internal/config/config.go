package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Dashboard           Dashboard           `mapstructure:",squash"`
	ProviderRankingSync ProviderRankingSync `mapstructure:",squash"`
	MonthlyRevenueSync  MonthlyRevenueSync  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Dashboard struct {
	DefaultGrowthPercent float64 `mapstructure:"dashboard_default_growth_percent"`
	GrowthStep           float64 `mapstructure:"dashboard_growth_step"`
	DefaultTopN          int     `mapstructure:"dashboard_default_top_n"`
	MaxCustomRangeDays   int     `mapstructure:"dashboard_max_custom_range_days"`
}

type ProviderRankingSync struct {
	CronSchedule string `mapstructure:"provider_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"provider_ranking_sync_enabled"`
}

type MonthlyRevenueSync struct {
	CronSchedule  string `mapstructure:"monthly_revenue_sync_cron"`
	Enabled       bool   `mapstructure:"monthly_revenue_sync_enabled"`
	MonthLookBack int    `mapstructure:"monthly_revenue_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salon?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do painel
	viper.SetDefault("DASHBOARD_DEFAULT_GROWTH_PERCENT", 20) // Meta padrão de 20% sobre o ano anterior
	viper.SetDefault("DASHBOARD_GROWTH_STEP", 5)
	viper.SetDefault("DASHBOARD_DEFAULT_TOP_N", 10)
	viper.SetDefault("DASHBOARD_MAX_CUSTOM_RANGE_DAYS", 366)

	viper.SetDefault("PROVIDER_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PROVIDER_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("MONTHLY_REVENUE_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_REVENUE_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Location retorna o fuso do salão, caindo para o fuso local quando inválido
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.Local
	}

	location, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", a.Timezone).Warn("Fuso horário inválido, usando o fuso local")
		return time.Local
	}

	return location
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
