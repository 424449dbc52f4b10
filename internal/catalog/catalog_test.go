package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ntshop/internal/catalog"
	"ntshop/internal/domain"
)

func prod(id int, cat domain.Category) *domain.Product {
	return &domain.Product{ID: id, Name: "p", Category: cat, BasePrice: decimal.NewFromInt(100)}
}

func TestAddCapacity(t *testing.T) {
	c := catalog.New(2)
	require.NoError(t, c.Add(prod(1, domain.Fashion)))
	require.NoError(t, c.Add(prod(2, domain.Fashion)))
	assert.ErrorIs(t, c.Add(prod(3, domain.Fashion)), domain.ErrCapacityExceeded)
	assert.Equal(t, 2, c.Len())
}

func TestByID(t *testing.T) {
	c := catalog.New(10)
	require.NoError(t, c.Add(prod(7, domain.Education)))

	p, err := c.ByID(7)
	require.NoError(t, err)
	assert.Equal(t, 7, p.ID)

	_, err = c.ByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestByCategoryKeepsInsertionOrder(t *testing.T) {
	c := catalog.New(10)
	require.NoError(t, c.Add(prod(3, domain.Electronics)))
	require.NoError(t, c.Add(prod(1, domain.Fashion)))
	require.NoError(t, c.Add(prod(2, domain.Electronics)))

	got := c.ByCategory(domain.Electronics)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	assert.Empty(t, c.ByCategory(domain.Automobiles))
}

func TestCategoryCounts(t *testing.T) {
	c := catalog.New(10)
	require.NoError(t, c.Add(prod(1, domain.Fashion)))
	require.NoError(t, c.Add(prod(2, domain.Fashion)))
	require.NoError(t, c.Add(prod(3, domain.Electronics)))

	counts := c.CategoryCounts()
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.ByCategory[domain.Fashion])
	assert.Equal(t, 1, counts.ByCategory[domain.Electronics])
	assert.Equal(t, 0, counts.ByCategory[domain.Education])
	assert.Equal(t, 0, counts.ByCategory[domain.Automobiles])
}

func TestSeedDefaults(t *testing.T) {
	c := catalog.New(100)
	require.NoError(t, c.SeedDefaults())
	assert.Equal(t, 80, c.Len())

	counts := c.CategoryCounts()
	for _, cat := range domain.Categories() {
		assert.Equal(t, 20, counts.ByCategory[cat], cat)
	}

	tv, err := c.ByID(61)
	require.NoError(t, err)
	assert.Equal(t, "43-inch 4K Smart TV", tv.Name)
	assert.Equal(t, domain.Electronics, tv.Category)
	assert.True(t, tv.BasePrice.Equal(decimal.NewFromInt(75000)))

	// seeding twice is a no-op
	require.NoError(t, c.SeedDefaults())
	assert.Equal(t, 80, c.Len())
}
