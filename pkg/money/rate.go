package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is a dimensionless ratio stored as a fraction: 0.10 is 10%.
// Negative rates and rates above 100% are legal (discounts, adjustments).
type Rate struct {
	fraction float64
}

func NewRate(fraction float64) Rate {
	return Rate{fraction: fraction}
}

func RateFromPercentage(percentage float64) Rate {
	return Rate{fraction: percentage / 100}
}

// NullRate is a Rate that may be absent, in the manner of sql.NullFloat64.
type NullRate struct {
	Rate  Rate
	Valid bool
}

// RateFromNullable returns rate when set, otherwise fallback.
// The result is absent only when both are nil.
func RateFromNullable(rate, fallback *float64) NullRate {
	switch {
	case rate != nil:
		return NullRate{Rate: NewRate(*rate), Valid: true}
	case fallback != nil:
		return NullRate{Rate: NewRate(*fallback), Valid: true}
	default:
		return NullRate{}
	}
}

// RateFromNullablePercentage is RateFromNullable for percentages; the fallback is a percentage too.
func RateFromNullablePercentage(percentage, fallback *float64) NullRate {
	switch {
	case percentage != nil:
		return NullRate{Rate: RateFromPercentage(*percentage), Valid: true}
	case fallback != nil:
		return NullRate{Rate: RateFromPercentage(*fallback), Valid: true}
	default:
		return NullRate{}
	}
}

// Fraction returns the stored ratio unchanged.
func (r Rate) Fraction() float64 {
	return r.fraction
}

func (r Rate) Percentage() float64 {
	return r.fraction * 100
}

// String renders the percentage with two fixed decimals, a comma decimal mark
// and spaces between thousands, e.g. "-10,00%" or "1 250,50%".
func (r Rate) String() string {
	p := r.Percentage()
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return strconv.FormatFloat(p, 'f', -1, 64) + "%"
	}

	fixed := decimal.NewFromFloat(p).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + groupThousands(intPart, ' ') + "," + fracPart + "%"
}

func groupThousands(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fraction)
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.fraction)
}

func (n NullRate) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Rate.MarshalJSON()
}

func (n *NullRate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullRate{}
		return nil
	}
	if err := n.Rate.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
