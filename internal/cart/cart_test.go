package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ntshop/internal/cart"
	"ntshop/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var (
	tv    = &domain.Product{ID: 61, Name: "43-inch 4K Smart TV", Category: domain.Electronics, SubCategory: "TV", BasePrice: d("75000")}
	jeans = &domain.Product{ID: 1, Name: "Slim Fit Jeans", Category: domain.Fashion, SubCategory: "Men's Clothing", BasePrice: d("3500")}
)

func TestAddRejectsInvalidItems(t *testing.T) {
	c := cart.New(20)
	assert.ErrorIs(t, c.Add(nil, 1), domain.ErrInvalidItem)
	assert.ErrorIs(t, c.Add(tv, 0), domain.ErrInvalidItem)
	assert.ErrorIs(t, c.Add(tv, -2), domain.ErrInvalidItem)
	assert.True(t, c.IsEmpty())
}

func TestAddRejectsWhenFull(t *testing.T) {
	c := cart.New(2)
	require.NoError(t, c.Add(tv, 1))
	require.NoError(t, c.Add(jeans, 1))
	assert.ErrorIs(t, c.Add(jeans, 1), domain.ErrCapacityExceeded)
	assert.Len(t, c.Lines(), 2)
}

func TestAddDoesNotMergeLines(t *testing.T) {
	c := cart.New(20)
	require.NoError(t, c.Add(jeans, 1))
	require.NoError(t, c.Add(jeans, 2))
	require.Len(t, c.Lines(), 2)
	assert.Equal(t, 1, c.Lines()[0].Qty)
	assert.Equal(t, 2, c.Lines()[1].Qty)
}

func TestTotal(t *testing.T) {
	c := cart.New(20)
	assert.True(t, c.Total().IsZero())

	// 75000*3*0.9 + 3500*2
	require.NoError(t, c.Add(tv, 3))
	require.NoError(t, c.Add(jeans, 2))
	assert.True(t, c.Total().Equal(d("209500")), "got %s", c.Total())
}

func TestClear(t *testing.T) {
	c := cart.New(20)
	require.NoError(t, c.Add(tv, 1))
	require.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
	assert.Empty(t, c.Lines())
}
