package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/api/handler"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// filterFlags são os filtros dimensionais comuns aos dois comandos
type filterFlags struct {
	provider string
	service  string
	campaign string
	partner  string
	product  string
	channel  string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.provider, "provider", "", "filtra por profissional")
	cmd.Flags().StringVar(&f.service, "service", "", "filtra por serviço")
	cmd.Flags().StringVar(&f.campaign, "campaign", "", "filtra por campanha")
	cmd.Flags().StringVar(&f.partner, "partner", "", "filtra por parceiro")
	cmd.Flags().StringVar(&f.product, "product", "", "filtra por produto")
	cmd.Flags().StringVar(&f.channel, "channel", "", "filtra por canal de aquisição")
}

func (f *filterFlags) values() url.Values {
	query := url.Values{}
	setIfNotEmpty(query, "provider", f.provider)
	setIfNotEmpty(query, "service", f.service)
	setIfNotEmpty(query, "campaign", f.campaign)
	setIfNotEmpty(query, "partner", f.partner)
	setIfNotEmpty(query, "product", f.product)
	setIfNotEmpty(query, "channel", f.channel)
	return query
}

func newDashboardCmd() *cobra.Command {
	var (
		filters   filterFlags
		view      string
		date      string
		startDate string
		endDate   string
		step      int
		top       int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Imprime o painel (KPIs, série temporal e rankings) do período",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := filters.values()
			setIfNotEmpty(query, "view", view)
			setIfNotEmpty(query, "date", date)
			setIfNotEmpty(query, "start_date", startDate)
			setIfNotEmpty(query, "end_date", endDate)
			if step != 0 {
				query.Set("step", strconv.Itoa(step))
			}
			if top > 0 {
				query.Set("top", strconv.Itoa(top))
			}

			request, err := handler.ParseDashboardRequest(query, time.Now())
			if err != nil {
				return err
			}

			var report *domain.DashboardReport
			if fromDB {
				service, closeFn, err := newDatabaseService(cmd.Context())
				if err != nil {
					return err
				}
				defer closeFn()

				report, err = service.GetDashboard(cmd.Context(), request)
				if err != nil {
					return err
				}
			} else {
				if err := request.Period.Validate(reporting.DefaultMaxCustomRangeDays); err != nil {
					return err
				}

				snapshot, err := loadSnapshotFile(snapshotFile)
				if err != nil {
					return err
				}

				if request.TopN <= 0 {
					request.TopN = 10
				}
				report = reporting.ComputeDashboard(snapshot, request.Period, request.Filters, request.TopN, time.Now())
			}

			return printJSON(report)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&view, "view", "month", "modo de visualização: day, month, year ou custom")
	cmd.Flags().StringVar(&date, "date", "", "data de referência yyyy-mm-dd (padrão: hoje)")
	cmd.Flags().StringVar(&startDate, "start", "", "início do intervalo custom yyyy-mm-dd")
	cmd.Flags().StringVar(&endDate, "end", "", "fim do intervalo custom yyyy-mm-dd")
	cmd.Flags().IntVar(&step, "step", 0, "desloca o período (-1 anterior, 1 próximo)")
	cmd.Flags().IntVar(&top, "top", 0, "quantidade de itens por ranking")

	return cmd
}

func newForecastCmd() *cobra.Command {
	var (
		filters  filterFlags
		growth   float64
		baseline []float64
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Imprime a previsão mensal do ano corrente contra a meta de crescimento",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := filters.values()
			if cmd.Flags().Changed("growth") {
				query.Set("growth", strconv.FormatFloat(growth, 'f', -1, 64))
			}

			request, err := handler.ParseForecastRequest(query)
			if err != nil {
				return err
			}

			if fromDB {
				service, closeFn, err := newDatabaseService(cmd.Context())
				if err != nil {
					return err
				}
				defer closeFn()

				forecast, err := service.GetForecast(cmd.Context(), request)
				if err != nil {
					return err
				}
				return printJSON(forecast)
			}

			if len(baseline) != 12 {
				return errors.Errorf("--baseline precisa de 12 valores, recebeu %d", len(baseline))
			}

			percent := reporting.DefaultGrowthPercent
			if request.GrowthPercent != nil {
				percent = *request.GrowthPercent
			}

			target, err := reporting.NewGrowthTarget(percent, reporting.DefaultGrowthStep)
			if err != nil {
				return err
			}

			snapshot, err := loadSnapshotFile(snapshotFile)
			if err != nil {
				return err
			}

			input := reporting.ForecastInput{
				Growth:  target,
				Filters: request.Filters,
				Now:     time.Now(),
			}
			copy(input.Baseline[:], baseline)

			return printJSON(reporting.ComputeForecast(snapshot, input))
		},
	}

	filters.register(cmd)
	cmd.Flags().Float64Var(&growth, "growth", reporting.DefaultGrowthPercent, "percentual de crescimento sobre o ano anterior")
	cmd.Flags().Float64SliceVar(&baseline, "baseline", nil, "faturamento mensal do ano anterior (12 valores, jan a dez)")

	return cmd
}

func newDatabaseService(ctx context.Context) (*reporting.Service, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao carregar configuração")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	service := reporting.NewService(
		repository.NewSnapshotRepository(conn),
		repository.NewMonthlyRevenueRepository(conn),
		cfg,
	)

	return service, func() { conn.Close() }, nil
}

func loadSnapshotFile(path string) (*domain.Snapshot, error) {
	if path == "" {
		return nil, errors.New("informe --snapshot ou --from-db")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir snapshot %s", path)
	}
	defer file.Close()

	var snapshot domain.Snapshot
	if err := json.NewDecoder(file).Decode(&snapshot); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar snapshot %s", path)
	}

	return &snapshot, nil
}

func printJSON(payload any) error {
	out, err := utils.PrettyJson(payload)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
