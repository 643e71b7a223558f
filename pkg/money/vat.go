package money

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// VAT is one of the recognized VAT bands, or NotAssujetti for figures outside the scope of VAT.
type VAT uint8

const (
	NotAssujetti VAT = iota
	ZeroPercent
	TwoDotOnePercent
	FiveDotFivePercent
	SevenPercent
	EightDotFivePercent
	TenPercent
	TwentyPercent
)

type band struct {
	name       string
	percentage float64
	rate       float64
}

// Rates are kept next to percentages so that VATFromRate(v.Rate()) always finds v again.
var bands = [...]band{
	NotAssujetti:        {name: "NON_ASSUJETTI", percentage: 0, rate: 0},
	ZeroPercent:         {name: "ZERO_PERCENT", percentage: 0, rate: 0},
	TwoDotOnePercent:    {name: "TWO_DOT_ONE_PERCENT", percentage: 2.1, rate: .021},
	FiveDotFivePercent:  {name: "FIVE_DOT_FIVE_PERCENT", percentage: 5.5, rate: .055},
	SevenPercent:        {name: "SEVEN_PERCENT", percentage: 7, rate: .07},
	EightDotFivePercent: {name: "EIGHT_DOT_FIVE_PERCENT", percentage: 8.5, rate: .085},
	TenPercent:          {name: "TEN_PERCENT", percentage: 10, rate: .1},
	TwentyPercent:       {name: "TWENTY_PERCENT", percentage: 20, rate: .2},
}

func (v VAT) band() band {
	if int(v) >= len(bands) {
		panic(fmt.Sprintf("money: unknown VAT band %d", uint8(v)))
	}
	return bands[v]
}

// Bands returns every band, NotAssujetti first.
func Bands() []VAT {
	out := make([]VAT, len(bands))
	for i := range bands {
		out[i] = VAT(i)
	}
	return out
}

// Assujetti returns the bands that are subject to VAT.
func Assujetti() []VAT {
	return Bands()[1:]
}

// VATFromRate resolves the band whose rate is exactly fraction.
// There is no tolerance: 0.0825 is rejected even though 0.085 exists.
func VATFromRate(fraction float64) (VAT, error) {
	for _, v := range Assujetti() {
		if bands[v].rate == fraction {
			return v, nil
		}
	}
	return NotAssujetti, fmt.Errorf("%w: invalid VAT rate: %s", ErrInvalidArgument, strconv.FormatFloat(fraction, 'f', -1, 64))
}

// ParseVAT resolves a band from its Name.
func ParseVAT(name string) (VAT, error) {
	for i, b := range bands {
		if b.name == name {
			return VAT(i), nil
		}
	}
	return NotAssujetti, fmt.Errorf("%w: unknown VAT band %q", ErrInvalidArgument, name)
}

func (v VAT) Percentage() float64 {
	return v.band().percentage
}

func (v VAT) Rate() float64 {
	return v.band().rate
}

// Name is the stable upper-case identifier of the band, e.g. TWENTY_PERCENT.
func (v VAT) Name() string {
	return v.band().name
}

func (v VAT) IsAssujetti() bool {
	return v != NotAssujetti
}

// String renders the percentage rounded to two decimals without padding: "2.1%", "20%".
func (v VAT) String() string {
	return decimal.NewFromFloat(v.Percentage()).Round(Decimals).String() + "%"
}

// InclusiveToExclusive removes VAT at band v from an inclusive figure. The result is not rounded.
func InclusiveToExclusive(amount float64, v VAT) float64 {
	return amount / (1 + v.Rate())
}

// ExclusiveToInclusive adds VAT at band v to an exclusive figure. The result is not rounded.
func ExclusiveToInclusive(amount float64, v VAT) float64 {
	return amount * (1 + v.Rate())
}

// MarshalJSON encodes the band as its bare rate. NotAssujetti encodes as 0, like ZeroPercent.
func (v VAT) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Rate())
}

func (v *VAT) UnmarshalJSON(data []byte) error {
	var fraction float64
	if err := json.Unmarshal(data, &fraction); err != nil {
		return err
	}
	resolved, err := VATFromRate(fraction)
	if err != nil {
		return err
	}
	*v = resolved
	return nil
}
