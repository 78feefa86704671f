package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/costing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// El promedio es simple (no ponderado): dos compras de 300 y 310 por kilo
// promedian 305 sin importar las cantidades compradas.
func TestAveragePrice_PromedioSimple(t *testing.T) {
	avg, err := costing.AveragePrice([]decimal.Decimal{d("300"), d("310")})
	require.NoError(t, err)
	assert.True(t, d("305").Equal(avg), "esperado 305, obtenido %s", avg)
}

func TestAveragePrice_UnaSolaCompra(t *testing.T) {
	avg, err := costing.AveragePrice([]decimal.Decimal{d("950")})
	require.NoError(t, err)
	assert.True(t, d("950").Equal(avg))
}

func TestAveragePrice_TresPrecios(t *testing.T) {
	avg, err := costing.AveragePrice([]decimal.Decimal{d("100"), d("200"), d("400")})
	require.NoError(t, err)
	// (100+200+400)/3
	assert.True(t, d("700").Div(d("3")).Equal(avg))
}

// Sin compras registradas no hay costo definido: el caller debe abortar.
func TestAveragePrice_SinCompras_RetornaError(t *testing.T) {
	_, err := costing.AveragePrice(nil)
	assert.ErrorIs(t, err, domain.ErrNoPurchaseHistory)

	_, err = costing.AveragePrice([]decimal.Decimal{})
	assert.ErrorIs(t, err, domain.ErrNoPurchaseHistory)
}
