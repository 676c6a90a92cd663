package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func TestPeriod_Contains(t *testing.T) {
	reference := day(2024, time.March, 15)

	tests := []struct {
		name   string
		period Period
		date   string
		want   bool
	}{
		{"Dia: mesma data", NewPeriod(domain.ViewModeDay, reference), "2024-03-15", true},
		{"Dia: dia seguinte", NewPeriod(domain.ViewModeDay, reference), "2024-03-16", false},
		{"Mês: último dia do mês", NewPeriod(domain.ViewModeMonth, reference), "2024-03-31", true},
		{"Mês: mesmo mês de outro ano", NewPeriod(domain.ViewModeMonth, reference), "2023-03-15", false},
		{"Ano: dezembro do mesmo ano", NewPeriod(domain.ViewModeYear, reference), "2024-12-31", true},
		{"Ano: ano anterior", NewPeriod(domain.ViewModeYear, reference), "2023-12-31", false},
		{"Custom: extremos inclusivos", NewCustomPeriod("2024-03-01", "2024-03-10"), "2024-03-10", true},
		{"Custom: fora do intervalo", NewCustomPeriod("2024-03-01", "2024-03-10"), "2024-03-11", false},
		{"Custom invertido não contém nada", NewCustomPeriod("2024-03-10", "2024-03-01"), "2024-03-05", false},
		{"Data inválida nunca pertence", NewPeriod(domain.ViewModeYear, reference), "2024-13-01", false},
		{"Data vazia nunca pertence", NewPeriod(domain.ViewModeMonth, reference), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.date))
		})
	}
}

func TestPeriod_Navigate(t *testing.T) {
	t.Run("Próximo mês a partir de 31 de janeiro cai em fevereiro", func(t *testing.T) {
		period := NewPeriod(domain.ViewModeMonth, day(2024, time.January, 31)).Navigate(1)

		assert.Equal(t, time.February, period.Reference.Month())
		assert.True(t, period.Contains("2024-02-29"))
		assert.False(t, period.Contains("2024-03-01"))
	})

	t.Run("Mês anterior a partir de 31 de março cai em fevereiro", func(t *testing.T) {
		period := NewPeriod(domain.ViewModeMonth, day(2024, time.March, 31)).Navigate(-1)

		assert.Equal(t, time.February, period.Reference.Month())
	})

	t.Run("Dia anterior atravessa a virada do ano", func(t *testing.T) {
		period := NewPeriod(domain.ViewModeDay, day(2024, time.January, 1)).Navigate(-1)

		assert.True(t, period.Contains("2023-12-31"))
	})

	t.Run("Ano seguinte", func(t *testing.T) {
		period := NewPeriod(domain.ViewModeYear, day(2024, time.June, 1)).Navigate(1)

		assert.Equal(t, 2025, period.Reference.Year())
	})

	t.Run("Custom não navega", func(t *testing.T) {
		period := NewCustomPeriod("2024-03-01", "2024-03-10")

		assert.Equal(t, period, period.Navigate(1))
	})
}

func TestPeriod_WithMode(t *testing.T) {
	now := day(2024, time.May, 20)

	t.Run("Sair do custom reinicia a referência para hoje", func(t *testing.T) {
		period := NewCustomPeriod("2024-03-01", "2024-03-10").WithMode(domain.ViewModeMonth, now)

		assert.Equal(t, domain.ViewModeMonth, period.Mode)
		assert.Equal(t, now, period.Reference)
	})

	t.Run("Trocar entre modos comuns mantém a referência", func(t *testing.T) {
		reference := day(2024, time.March, 15)
		period := NewPeriod(domain.ViewModeDay, reference).WithMode(domain.ViewModeYear, now)

		assert.Equal(t, reference, period.Reference)
	})
}

func TestPeriod_Validate(t *testing.T) {
	tests := []struct {
		name         string
		period       Period
		maxRangeDays int
		wantErr      error
	}{
		{"Mês válido", marchPeriod(), 0, nil},
		{"Custom invertido é válido", NewCustomPeriod("2024-03-10", "2024-03-01"), 0, nil},
		{"Custom invertido longo é válido", NewCustomPeriod("9999-12-31", "0001-01-01"), 0, nil},
		{"Modo desconhecido", NewPeriod("week", day(2024, time.March, 1)), 0, ErrInvalidViewMode},
		{"Sem data de referência", NewPeriod(domain.ViewModeDay, time.Time{}), 0, ErrInvalidReferenceDate},
		{"Custom com data malformada", NewCustomPeriod("2024-3-1", "2024-03-10"), 0, ErrInvalidDateRange},
		{"Custom de um ano bissexto inteiro cabe no padrão", NewCustomPeriod("2024-01-01", "2024-12-31"), 0, nil},
		{"Custom de 367 dias excede o padrão", NewCustomPeriod("2024-01-01", "2025-01-01"), 0, ErrInvalidDateRange},
		{"Custom de milênios excede o padrão", NewCustomPeriod("0001-01-01", "9999-12-31"), 0, ErrInvalidDateRange},
		{"Limite configurado menor", NewCustomPeriod("2024-03-01", "2024-03-31"), 30, ErrInvalidDateRange},
		{"Limite configurado exato", NewCustomPeriod("2024-03-01", "2024-03-30"), 30, nil},
		{"Limite configurado nunca passa do teto", NewCustomPeriod("2000-01-01", "2019-12-31"), 100000, ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.period.Validate(tt.maxRangeDays)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, IsValidationError(err))

			var reportingErr *ReportingError
			require.True(t, errors.As(err, &reportingErr))
			assert.Equal(t, CodeInvalidPeriod, reportingErr.Code)
		})
	}
}

func TestPeriod_BoundsAndInfo(t *testing.T) {
	t.Run("Mês bissexto", func(t *testing.T) {
		start, end, ok := NewPeriod(domain.ViewModeMonth, day(2024, time.February, 10)).Bounds()

		require.True(t, ok)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, 29, end.Day())
	})

	t.Run("Custom invertido não tem limites", func(t *testing.T) {
		_, _, ok := NewCustomPeriod("2024-03-10", "2024-03-01").Bounds()

		assert.False(t, ok)
	})

	t.Run("Info descreve vizinhos do período", func(t *testing.T) {
		info := NewPeriod(domain.ViewModeMonth, day(2024, time.January, 31)).Info()

		assert.Equal(t, "2024-01-01", info.StartDate)
		assert.Equal(t, "2024-01-31", info.EndDate)
		assert.Equal(t, "2023-12-01", info.Previous)
		assert.Equal(t, "2024-02-01", info.Next)
	})
}
