package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseLocalNoonDate interpreta yyyy-mm-dd como data de calendário fixada ao meio-dia local,
// evitando que a virada de fuso desloque o dia
func ParseLocalNoonDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return NoonOf(date), nil
}

// NoonOf retorna o mesmo dia de calendário ao meio-dia no fuso local
func NoonOf(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

// ParseHour extrai a hora inteira de um horário hh:mm
func ParseHour(timeStr string) (int, error) {
	hourStr, _, _ := strings.Cut(strings.TrimSpace(timeStr), ":")
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, err
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hora fora do intervalo: %d", hour)
	}

	return hour, nil
}

func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}

// FirstDayOfMonth retorna o primeiro dia do mês da data, preservando o horário
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// LastDayOfMonth retorna o último dia do mês da data, preservando o horário
func LastDayOfMonth(date time.Time) time.Time {
	return FirstDayOfMonth(date).AddDate(0, 1, -1)
}

// MonthPeriod formata a data no período mm-yyyy usado nas tabelas mensais
func MonthPeriod(date time.Time) string {
	return date.Format("01-2006")
}
