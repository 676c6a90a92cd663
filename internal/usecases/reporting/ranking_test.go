package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	key   string
	value int64
}

func sampleKey(s sample) (string, bool) { return s.key, s.key != "" }

func sampleValue(s sample) decimal.Decimal { return decimal.NewFromInt(s.value) }

func groupKeys(groups []Group[string]) []string {
	keys := make([]string, 0, len(groups))
	for _, group := range groups {
		keys = append(keys, group.Key)
	}
	return keys
}

func TestGroupBy(t *testing.T) {
	records := []sample{{"b", 10}, {"a", 5}, {"", 100}, {"b", 1}, {"c", 7}}

	t.Run("Ordem de primeira aparição sem seed", func(t *testing.T) {
		groups := GroupBy(records, sampleKey, sampleValue, nil)

		assert.Equal(t, []string{"b", "a", "c"}, groupKeys(groups))
		assert.Equal(t, 11.0, groups[0].Value())
		assert.Equal(t, 2, groups[0].Count)
	})

	t.Run("Seed define a ordem e chaves sem registros somem", func(t *testing.T) {
		groups := GroupBy(records, sampleKey, sampleValue, []string{"c", "z", "a"})

		assert.Equal(t, []string{"c", "a", "b"}, groupKeys(groups))
	})

	t.Run("Sem valueFn só conta", func(t *testing.T) {
		groups := GroupBy(records, sampleKey, nil, nil)

		assert.True(t, groups[0].Total.IsZero())
		assert.Equal(t, 2, groups[0].Count)
	})
}

func TestSortAndTopN(t *testing.T) {
	groups := GroupBy(
		[]sample{{"a", 5}, {"b", 5}, {"c", 9}, {"a", 0}},
		sampleKey,
		sampleValue,
		nil,
	)

	t.Run("Total com empate preserva a ordem de entrada", func(t *testing.T) {
		assert.Equal(t, []string{"c", "a", "b"}, groupKeys(SortByTotal(groups)))
	})

	t.Run("Contagem com empate preserva a ordem de entrada", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, groupKeys(SortByCount(groups)))
	})

	t.Run("Ordenar não altera a entrada", func(t *testing.T) {
		SortByTotal(groups)
		assert.Equal(t, []string{"a", "b", "c"}, groupKeys(groups))
	})

	t.Run("TopN", func(t *testing.T) {
		assert.Len(t, TopN(groups, 2), 2)
		assert.Len(t, TopN(groups, 10), 3)
		assert.Len(t, TopN(groups, 0), 3)
	})

	t.Run("Média do grupo", func(t *testing.T) {
		assert.True(t, decimal.NewFromFloat(2.5).Equal(groups[0].Average()))
		assert.True(t, Group[string]{}.Average().IsZero())
	})
}
