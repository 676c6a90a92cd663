package reporting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

const (
	firstBusinessHour = 7
	lastBusinessHour  = 20
)

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel retorna a abreviação do mês a partir do ordinal 0-11
func MonthLabel(ordinal int) string {
	if ordinal < 0 || ordinal > 11 {
		return ""
	}
	return monthLabels[ordinal]
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

type bucketAccumulator struct {
	label   string
	count   int
	amounts Amounts
}

func (b *bucketAccumulator) add(amounts Amounts) {
	b.count++
	b.amounts = b.amounts.Add(amounts)
}

func (b *bucketAccumulator) bucket() domain.TimeBucket {
	return domain.TimeBucket{
		Label:       b.label,
		Count:       b.count,
		Faturamento: b.amounts.Faturamento.InexactFloat64(),
		Receita:     b.amounts.Receita().InexactFloat64(),
	}
}

// BuildTimeSeries distribui os atendimentos filtrados nos intervalos do modo de visualização
func BuildTimeSeries(bookings []domain.Booking, period Period, catalog *Catalog) []domain.TimeBucket {
	var accumulators []*bucketAccumulator
	var bucketOf func(booking *domain.Booking) int

	switch period.Mode {
	case domain.ViewModeDay:
		for hour := firstBusinessHour; hour <= lastBusinessHour; hour++ {
			accumulators = append(accumulators, &bucketAccumulator{label: hourLabel(hour)})
		}
		bucketOf = func(booking *domain.Booking) int {
			hour, err := utils.ParseHour(booking.Time)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"booking_id": booking.ID,
					"time":       booking.Time,
				}).Warn("serie temporal: horário inválido ignorado")
				return -1
			}
			// Fora do expediente cai na primeira ou na última faixa para conservar o faturamento
			hour = max(firstBusinessHour, min(hour, lastBusinessHour))
			return hour - firstBusinessHour
		}

	case domain.ViewModeMonth, domain.ViewModeCustom:
		start, end, ok := period.Bounds()
		if !ok {
			return []domain.TimeBucket{}
		}
		if days := rangeDays(start, end); days > MaxCustomRangeDaysLimit {
			logrus.WithFields(logrus.Fields{
				"start_date": utils.FormatDate(start),
				"end_date":   utils.FormatDate(end),
				"days":       days,
			}).Warn("serie temporal: intervalo acima do limite ignorado")
			return []domain.TimeBucket{}
		}

		index := make(map[string]int)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			label := utils.FormatDate(day)
			index[label] = len(accumulators)
			accumulators = append(accumulators, &bucketAccumulator{label: label})
		}
		bucketOf = func(booking *domain.Booking) int {
			if i, ok := index[booking.Date]; ok {
				return i
			}
			return -1
		}

	case domain.ViewModeYear:
		for month := 0; month < 12; month++ {
			accumulators = append(accumulators, &bucketAccumulator{label: monthLabels[month]})
		}
		bucketOf = func(booking *domain.Booking) int {
			date, err := utils.ParseLocalNoonDate(booking.Date)
			if err != nil {
				return -1
			}
			return int(date.Month()) - 1
		}

	default:
		return []domain.TimeBucket{}
	}

	for i := range bookings {
		booking := &bookings[i]
		if booking.IsCancelled() {
			continue
		}

		bucket := bucketOf(booking)
		if bucket < 0 {
			continue
		}

		accumulators[bucket].add(BookingAmounts(booking, catalog))
	}

	series := make([]domain.TimeBucket, 0, len(accumulators))
	for _, accumulator := range accumulators {
		series = append(series, accumulator.bucket())
	}

	return series
}
