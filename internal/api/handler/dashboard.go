package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

// GetDashboard recalcula o painel para o período e filtros da query string
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request, err := ParseDashboardRequest(r.URL.Query(), time.Now())
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetros inválidos")
			writeReportingError(w, err, apiErrors.ErrInvalidFormat)
			return
		}

		report, err := service.GetDashboard(r.Context(), request)
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao calcular painel")
			writeReportingError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, logger, report)
	})
}

// GetForecast calcula a curva preditiva do ano corrente
func GetForecast(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request, err := ParseForecastRequest(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("forecast: parâmetros inválidos")
			writeReportingError(w, err, apiErrors.ErrInvalidFormat)
			return
		}

		forecast, err := service.GetForecast(r.Context(), request)
		if err != nil {
			logger.WithError(err).Error("forecast: falha ao calcular previsão")
			writeReportingError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, logger, forecast)
	})
}

// ParseDashboardRequest monta a requisição do painel. Sem view usa o mês; sem date usa hoje.
// step desloca o período de referência (-1 anterior, 1 próximo).
func ParseDashboardRequest(query url.Values, now time.Time) (reporting.DashboardRequest, error) {
	request := reporting.DashboardRequest{
		Filters: ParseFilters(query),
	}

	view := domain.ViewMode(query.Get("view"))
	if view == "" {
		view = domain.ViewModeMonth
	}

	if !reporting.IsValidViewMode(view) {
		return request, reporting.NewReportingError(reporting.ErrInvalidViewMode, reporting.CodeInvalidPeriod, string(view))
	}

	if view == domain.ViewModeCustom {
		request.Period = reporting.NewCustomPeriod(query.Get("start_date"), query.Get("end_date"))
	} else {
		reference := utils.NoonOf(now)
		if dateStr := query.Get("date"); dateStr != "" {
			date, err := utils.ParseLocalNoonDate(dateStr)
			if err != nil {
				return request, reporting.NewReportingError(reporting.ErrInvalidReferenceDate, reporting.CodeInvalidPeriod, dateStr)
			}
			reference = date
		}
		request.Period = reporting.NewPeriod(view, reference)
	}

	if stepStr := query.Get("step"); stepStr != "" {
		step, err := strconv.Atoi(stepStr)
		if err != nil {
			return request, reporting.NewReportingError(reporting.ErrInvalidReferenceDate, reporting.CodeInvalidPeriod, "step: "+stepStr)
		}
		request.Period = request.Period.Navigate(step)
	}

	if topStr := query.Get("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil || top < 0 {
			return request, errors.Errorf("parâmetro top inválido: %s", topStr)
		}
		request.TopN = top
	}

	return request, nil
}

// ParseForecastRequest lê o percentual de crescimento e os filtros da previsão
func ParseForecastRequest(query url.Values) (reporting.ForecastRequest, error) {
	request := reporting.ForecastRequest{
		Filters: reporting.ForecastFilters(ParseFilters(query)),
	}

	if growthStr := query.Get("growth"); growthStr != "" {
		growth, err := strconv.ParseFloat(growthStr, 64)
		if err != nil || growth < 0 {
			return request, reporting.NewReportingError(reporting.ErrInvalidGrowth, reporting.CodeInvalidGrowth, growthStr)
		}
		request.GrowthPercent = &growth
	}

	return request, nil
}

func ParseFilters(query url.Values) domain.DashboardFilters {
	return domain.DashboardFilters{
		ProviderID: query.Get("provider"),
		ServiceID:  query.Get("service"),
		CampaignID: query.Get("campaign"),
		PartnerID:  query.Get("partner"),
		ProductID:  query.Get("product"),
		Channel:    query.Get("channel"),
	}
}

// writeReportingError traduz o erro do painel para o código da API. fallbackCode cobre erros não classificados.
func writeReportingError(w http.ResponseWriter, err error, fallbackCode string) {
	var reportingErr *reporting.ReportingError
	if errors.As(err, &reportingErr) {
		apiErrors.WriteError(w, reportingErr.Code, reportingErr.Error(), nil)
		return
	}

	if reporting.IsValidationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	if errors.Is(err, reporting.ErrSnapshotUnavailable) || errors.Is(err, reporting.ErrBaselineUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, fallbackCode, err.Error(), nil)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	writeJSONStatus(w, logger, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.WithError(err).Warn("erro ao escrever resposta")
	}
}
