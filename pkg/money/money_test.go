package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
)

func TestFormatBRL(t *testing.T) {
	got, err := Format(1234.5, "BRL")
	require.NoError(t, err)
	assert.Equal(t, "R$"+Separator+"1.234,50", got)
}

func TestFormatKeepsUpToFourFractionDigits(t *testing.T) {
	got, err := Format(0.2534, "BRL")
	require.NoError(t, err)
	assert.Equal(t, "R$"+Separator+"0,2534", got)

	got, err = Format(0.3, "BRL")
	require.NoError(t, err)
	assert.Equal(t, "R$"+Separator+"0,30", got)
}

func TestFormatNegativeSignPrecedesSymbol(t *testing.T) {
	got, err := Format(-0.25, "BRL")
	require.NoError(t, err)
	assert.Equal(t, "-R$"+Separator+"0,25", got)
}

func TestFormatUSDUsesBrazilianLocale(t *testing.T) {
	got, err := Format(0.05, "USD")
	require.NoError(t, err)
	assert.Contains(t, got, "US$")
	assert.Contains(t, got, "0,05")
}

func TestFormatUnsupportedCurrency(t *testing.T) {
	for _, code := range []string{"", "REAL", "R$"} {
		_, err := Format(1, code)
		assert.ErrorIs(t, err, types.ErrUnsupportedCurrency, code)
	}
	assert.Equal(t, "REAL 1.0000", MustFormat(1, "REAL"))
}

func TestConvertChangesOnlyDisplayedValue(t *testing.T) {
	rates := DefaultRates()

	brl, err := Convert(0.25, "BRL", rates)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, brl, 1e-12)

	usd, err := Convert(0.25, "USD", rates)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, usd, 1e-12)

	_, err = Convert(0.25, "EUR", rates)
	assert.ErrorIs(t, err, types.ErrUnsupportedCurrency)
}

func TestAxisTick(t *testing.T) {
	assert.Equal(t, "R$0.25", AxisTick(0.25, "BRL"))
	assert.Equal(t, "$0.25", AxisTick(0.25, "USD"))
	assert.Equal(t, "0.25", AxisTick(0.25, "REAL"))
}
