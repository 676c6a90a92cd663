package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

const (
	// DefaultMaxCustomRangeDays limita o intervalo custom quando a configuração não define outro
	DefaultMaxCustomRangeDays = 366
	// MaxCustomRangeDaysLimit é o teto absoluto, inclusive para a configuração
	MaxCustomRangeDaysLimit = 3660
)

// Period resolve se uma data pertence ao período do painel e como navegar entre períodos
type Period struct {
	Mode      domain.ViewMode
	Reference time.Time
	StartDate string // Apenas no modo custom, yyyy-mm-dd
	EndDate   string // Apenas no modo custom, yyyy-mm-dd
}

func NewPeriod(mode domain.ViewMode, reference time.Time) Period {
	return Period{
		Mode:      mode,
		Reference: reference,
	}
}

func NewCustomPeriod(startDate, endDate string) Period {
	return Period{
		Mode:      domain.ViewModeCustom,
		StartDate: startDate,
		EndDate:   endDate,
	}
}

// IsValidViewMode verifica se o modo de visualização é conhecido
func IsValidViewMode(mode domain.ViewMode) bool {
	switch mode {
	case domain.ViewModeDay, domain.ViewModeMonth, domain.ViewModeYear, domain.ViewModeCustom:
		return true
	}
	return false
}

// Validate garante que o período pode ser calculado. Intervalo custom com início após o fim
// é válido e resulta em conjuntos vazios. maxRangeDays <= 0 usa DefaultMaxCustomRangeDays.
func (p Period) Validate(maxRangeDays int) error {
	if !IsValidViewMode(p.Mode) {
		return NewReportingError(ErrInvalidViewMode, CodeInvalidPeriod, string(p.Mode))
	}

	if p.Mode != domain.ViewModeCustom {
		if p.Reference.IsZero() {
			return NewReportingError(ErrInvalidReferenceDate, CodeInvalidPeriod, "data de referência ausente")
		}
		return nil
	}

	startDate, err := utils.ParseLocalNoonDate(p.StartDate)
	if err != nil {
		return NewReportingError(ErrInvalidDateRange, CodeInvalidPeriod, "start_date: "+p.StartDate)
	}

	endDate, err := utils.ParseLocalNoonDate(p.EndDate)
	if err != nil {
		return NewReportingError(ErrInvalidDateRange, CodeInvalidPeriod, "end_date: "+p.EndDate)
	}

	maxRangeDays = effectiveMaxRangeDays(maxRangeDays)
	if days := rangeDays(startDate, endDate); days > maxRangeDays {
		return NewReportingError(
			ErrInvalidDateRange,
			CodeInvalidPeriod,
			fmt.Sprintf("intervalo de %d dias excede o máximo de %d", days, maxRangeDays),
		)
	}

	return nil
}

func effectiveMaxRangeDays(maxRangeDays int) int {
	if maxRangeDays <= 0 {
		return DefaultMaxCustomRangeDays
	}
	return min(maxRangeDays, MaxCustomRangeDaysLimit)
}

// rangeDays conta os dias de calendário entre start e end, inclusive. Intervalo invertido dá <= 0.
func rangeDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	// Sub satura em ~292 anos, o que continua acima de qualquer limite aceito
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// Contains verifica se a data yyyy-mm-dd pertence ao período. Datas inválidas nunca pertencem.
func (p Period) Contains(dateStr string) bool {
	date, err := utils.ParseLocalNoonDate(dateStr)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date": dateStr,
			"view": p.Mode,
		}).Warn("periodo: data inválida ignorada no cálculo")
		return false
	}

	year, month, day := date.Date()
	refYear, refMonth, refDay := p.Reference.Date()

	switch p.Mode {
	case domain.ViewModeDay:
		return year == refYear && month == refMonth && day == refDay
	case domain.ViewModeMonth:
		return year == refYear && month == refMonth
	case domain.ViewModeYear:
		return year == refYear
	case domain.ViewModeCustom:
		// Comparação lexicográfica equivale à cronológica no formato yyyy-mm-dd
		return p.StartDate <= dateStr && dateStr <= p.EndDate
	}

	return false
}

// Navigate avança (direction > 0) ou recua (direction < 0) o período de referência
func (p Period) Navigate(direction int) Period {
	switch p.Mode {
	case domain.ViewModeDay:
		p.Reference = p.Reference.AddDate(0, 0, direction)
	case domain.ViewModeMonth:
		// Volta para o dia 1 antes de trocar o mês: 31/01 + 1 mês precisa cair em fevereiro
		p.Reference = utils.FirstDayOfMonth(p.Reference).AddDate(0, direction, 0)
	case domain.ViewModeYear:
		p.Reference = p.Reference.AddDate(direction, 0, 0)
	}

	return p
}

// WithMode troca o modo de visualização. Sair do modo custom reinicia a referência para hoje.
func (p Period) WithMode(mode domain.ViewMode, now time.Time) Period {
	if p.Mode == domain.ViewModeCustom && mode != domain.ViewModeCustom {
		p.Reference = now
	}

	p.Mode = mode
	return p
}

// WithRange define o intervalo explícito usado pelo modo custom
func (p Period) WithRange(startDate, endDate string) Period {
	p.StartDate = startDate
	p.EndDate = endDate
	return p
}

// Bounds retorna o primeiro e o último dia de calendário do período, ao meio-dia local.
// ok é falso quando o intervalo custom é inválido ou invertido.
func (p Period) Bounds() (start time.Time, end time.Time, ok bool) {
	reference := utils.NoonOf(p.Reference)

	switch p.Mode {
	case domain.ViewModeDay:
		return reference, reference, true
	case domain.ViewModeMonth:
		first := utils.FirstDayOfMonth(reference)
		return first, utils.LastDayOfMonth(reference), true
	case domain.ViewModeYear:
		first := time.Date(reference.Year(), time.January, 1, 12, 0, 0, 0, time.Local)
		last := time.Date(reference.Year(), time.December, 31, 12, 0, 0, 0, time.Local)
		return first, last, true
	case domain.ViewModeCustom:
		startDate, err := utils.ParseLocalNoonDate(p.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		endDate, err := utils.ParseLocalNoonDate(p.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		if startDate.After(endDate) {
			return time.Time{}, time.Time{}, false
		}
		return startDate, endDate, true
	}

	return time.Time{}, time.Time{}, false
}

// Info descreve o período para a resposta do painel
func (p Period) Info() domain.PeriodInfo {
	info := domain.PeriodInfo{View: p.Mode}

	if p.Mode == domain.ViewModeCustom {
		info.StartDate = p.StartDate
		info.EndDate = p.EndDate
		return info
	}

	info.Reference = utils.FormatDate(p.Reference)
	if start, end, ok := p.Bounds(); ok {
		info.StartDate = utils.FormatDate(start)
		info.EndDate = utils.FormatDate(end)
	}
	info.Previous = utils.FormatDate(p.Navigate(-1).Reference)
	info.Next = utils.FormatDate(p.Navigate(1).Reference)

	return info
}
