package money

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVAT_PercentageAndRate(t *testing.T) {
	cases := []struct {
		vat        VAT
		percentage float64
		display    string
	}{
		{ZeroPercent, 0, "0%"},
		{TwoDotOnePercent, 2.1, "2.1%"},
		{FiveDotFivePercent, 5.5, "5.5%"},
		{SevenPercent, 7, "7%"},
		{EightDotFivePercent, 8.5, "8.5%"},
		{TenPercent, 10, "10%"},
		{TwentyPercent, 20, "20%"},
	}

	for _, tc := range cases {
		t.Run(tc.vat.Name(), func(t *testing.T) {
			assert.Equal(t, tc.percentage, tc.vat.Percentage())
			assert.Equal(t, tc.percentage/100, tc.vat.Rate())
			assert.Equal(t, tc.display, tc.vat.String())
			assert.True(t, tc.vat.IsAssujetti())
		})
	}
}

func TestVAT_NotAssujetti(t *testing.T) {
	assert.False(t, NotAssujetti.IsAssujetti())
	assert.Equal(t, 0.0, NotAssujetti.Percentage())
	assert.Equal(t, 0.0, NotAssujetti.Rate())
	assert.Equal(t, "0%", NotAssujetti.String())
}

func TestVATFromRate(t *testing.T) {
	for _, v := range Assujetti() {
		got, err := VATFromRate(v.Rate())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := VATFromRate(0.085)
	require.NoError(t, err)
	assert.Equal(t, EightDotFivePercent, got)
}

func TestVATFromRate_RejectsUnknownRates(t *testing.T) {
	for _, fraction := range []float64{0.0825, 0.19, 0.2000001, -0.2, 20, 1} {
		_, err := VATFromRate(fraction)
		require.Error(t, err, "rate %v", fraction)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}

	_, err := VATFromRate(0.0825)
	assert.EqualError(t, err, "money: invalid argument: invalid VAT rate: 0.0825")
}

func TestVAT_InclusiveExclusiveHelpers(t *testing.T) {
	assert.Equal(t, 83.33, Round2(InclusiveToExclusive(100, TwentyPercent)))
	assert.Equal(t, 108.0, ExclusiveToInclusive(90, TwentyPercent))
	assert.Equal(t, 100.0, InclusiveToExclusive(100, NotAssujetti))
	assert.Equal(t, 100.0, ExclusiveToInclusive(100, ZeroPercent))
}

func TestVAT_Catalogue(t *testing.T) {
	all := Bands()
	require.Len(t, all, 8)
	assert.Equal(t, NotAssujetti, all[0])
	assert.Equal(t, TwentyPercent, all[len(all)-1])
	assert.NotContains(t, Assujetti(), NotAssujetti)

	for _, v := range all {
		parsed, err := ParseVAT(v.Name())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseVAT("NINETEEN_PERCENT")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestVAT_JSON(t *testing.T) {
	raw, err := json.Marshal(FiveDotFivePercent)
	require.NoError(t, err)
	assert.JSONEq(t, `0.055`, string(raw))

	raw, err = json.Marshal(NotAssujetti)
	require.NoError(t, err)
	assert.JSONEq(t, `0`, string(raw))

	var v VAT
	require.NoError(t, json.Unmarshal([]byte(`0.1`), &v))
	assert.Equal(t, TenPercent, v)

	assert.ErrorIs(t, json.Unmarshal([]byte(`0.0825`), &v), ErrInvalidArgument)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 83.33, Round2(83.325))
	assert.Equal(t, -1.01, Round2(-1.005))
	assert.Equal(t, 12.76, Round2(12.7625))
	assert.Equal(t, 108.0, Round2(108))
}
