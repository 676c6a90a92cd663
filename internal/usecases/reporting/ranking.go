package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Group é o resultado agregado de uma chave
type Group[K comparable] struct {
	Key   K
	Total decimal.Decimal
	Count int
}

func (g Group[K]) Value() float64 {
	return g.Total.InexactFloat64()
}

// Average retorna Total / Count, 0 quando o grupo é vazio
func (g Group[K]) Average() decimal.Decimal {
	if g.Count == 0 {
		return decimal.Zero
	}
	return g.Total.Div(decimal.NewFromInt(int64(g.Count)))
}

// GroupBy agrupa e soma os registros por chave. A ordem do resultado segue primeiro as chaves
// de seed (ordem de inserção das tabelas de apoio) e depois a primeira aparição nos registros,
// o que torna os desempates das ordenações estáveis. keyFn retorna false para ignorar o registro.
func GroupBy[T any, K comparable](
	records []T,
	keyFn func(T) (K, bool),
	valueFn func(T) decimal.Decimal,
	seed []K,
) []Group[K] {
	index := make(map[K]int, len(seed))
	groups := make([]Group[K], 0, len(seed))

	for _, key := range seed {
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group[K]{Key: key})
	}

	for _, record := range records {
		key, ok := keyFn(record)
		if !ok {
			continue
		}

		i, exists := index[key]
		if !exists {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[K]{Key: key})
		}

		groups[i].Count++
		if valueFn != nil {
			groups[i].Total = groups[i].Total.Add(valueFn(record))
		}
	}

	result := make([]Group[K], 0, len(groups))
	for _, group := range groups {
		if group.Count > 0 {
			result = append(result, group)
		}
	}

	return result
}

// SortByTotal ordena de forma estável do maior para o menor total
func SortByTotal[K comparable](groups []Group[K]) []Group[K] {
	return sortDesc(groups, func(a, b Group[K]) int { return a.Total.Cmp(b.Total) })
}

// SortByCount ordena de forma estável da maior para a menor contagem
func SortByCount[K comparable](groups []Group[K]) []Group[K] {
	return sortDesc(groups, func(a, b Group[K]) int { return a.Count - b.Count })
}

func sortDesc[T any](items []T, cmp func(a, b T) int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) > 0
	})

	return sorted
}

// TopN trunca a lista nos n primeiros. n <= 0 mantém todos.
func TopN[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
