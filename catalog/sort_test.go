package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ereklebazanovi/lifeStore-sub000/models"
)

func day(n int) time.Time {
	return time.Date(2024, 3, n, 0, 0, 0, 0, time.UTC)
}

func product(name string, priority, stock int, created time.Time) models.Product {
	return models.Product{Name: name, Priority: priority, Stock: stock, CreatedAt: created}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestSortStockOutDemotion(t *testing.T) {
	in := []models.Product{
		product("sold-out", 10, 0, day(5)),
		product("in-stock", 0, 3, day(1)),
	}

	got := SortProducts(in)
	assert.Equal(t, []string{"in-stock", "sold-out"}, names(got))
}

func TestSortTopPriorityOverridesStockOut(t *testing.T) {
	in := []models.Product{
		product("regular", 0, 3, day(1)),
		product("featured-sold-out", TopPriority, 0, day(2)),
	}

	got := SortProducts(in)
	assert.Equal(t, []string{"featured-sold-out", "regular"}, names(got))
}

func TestSortPriorityDescending(t *testing.T) {
	in := []models.Product{
		product("standard", 0, 5, day(1)),
		product("promoted", 10, 5, day(1)),
		product("top", 150, 5, day(1)),
	}

	got := SortProducts(in)
	assert.Equal(t, []string{"top", "promoted", "standard"}, names(got))
}

func TestSortRecencyTieBreak(t *testing.T) {
	in := []models.Product{
		product("older", 10, 5, day(1)),
		product("newer", 10, 5, day(9)),
	}

	got := SortProducts(in)
	assert.Equal(t, []string{"newer", "older"}, names(got))
}

func TestSortEqualTopPriorityIgnoresStock(t *testing.T) {
	// Both at the top tier: stock must not influence order, recency decides.
	in := []models.Product{
		product("top-sold-out", 120, 0, day(9)),
		product("top-in-stock", 120, 4, day(1)),
	}

	got := SortProducts(in)
	assert.Equal(t, []string{"top-sold-out", "top-in-stock"}, names(got))
}

func TestSortIsIdempotentAndPure(t *testing.T) {
	in := []models.Product{
		product("a", 0, 0, day(1)),
		product("b", 10, 5, day(2)),
		product("c", 10, 5, day(2)),
		product("d", 200, 0, day(3)),
	}
	inCopy := make([]models.Product, len(in))
	copy(inCopy, in)

	once := SortProducts(in)
	twice := SortProducts(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, inCopy, in, "input must not be mutated")
}

func TestSortStableForEqualKeys(t *testing.T) {
	in := []models.Product{
		product("first", 5, 2, day(4)),
		product("second", 5, 9, day(4)),
	}

	got := SortProducts(in)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"first", "second"}, names(got))
}
