package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/pricing"
)

// Margen 60% sobre el precio: precio = costo / 0.40. Un costo de 2.00 da 5.00.
func TestSellingPrice_MargenPorDefecto(t *testing.T) {
	cost := decimal.NewFromFloat(2.00)
	price, err := pricing.SellingPrice(cost, pricing.DefaultMargin)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(5.00).Equal(price), "esperado 5.00, obtenido %s", price)
}

func TestSellingPrice_MargenCero(t *testing.T) {
	cost := decimal.NewFromFloat(3.50)
	price, err := pricing.SellingPrice(cost, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, cost.Equal(price), "con margen 0 el precio es el costo")
}

func TestSellingPrice_CostoCero(t *testing.T) {
	price, err := pricing.SellingPrice(decimal.Zero, pricing.DefaultMargin)
	require.NoError(t, err)
	assert.True(t, price.IsZero())
}

// Margen >= 1 haría el divisor cero o negativo.
func TestSellingPrice_MargenInvalido(t *testing.T) {
	_, err := pricing.SellingPrice(decimal.NewFromFloat(2.00), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = pricing.SellingPrice(decimal.NewFromFloat(2.00), decimal.NewFromFloat(1.5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
