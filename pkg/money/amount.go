package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Amount is a non-negative monetary figure tied to a VAT band.
// The magnitude is always stored excluding VAT and is only rounded by accessors.
type Amount struct {
	excludingVAT float64
	vat          VAT
}

// Record is the interchange shape of an Amount.
type Record struct {
	AmountExcludingVat float64 `json:"amountExcludingVat"`
	VatRate            float64 `json:"vatRate"`
	IsAssujetti        bool    `json:"isAssujetti"`
}

// UnmarshalJSON requires all three keys, so a misspelled or partial record
// is rejected instead of decoding as an empty amount outside the scope of VAT.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		AmountExcludingVat *float64 `json:"amountExcludingVat"`
		VatRate            *float64 `json:"vatRate"`
		IsAssujetti        *bool    `json:"isAssujetti"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.AmountExcludingVat == nil {
		missing = append(missing, "amountExcludingVat")
	}
	if raw.VatRate == nil {
		missing = append(missing, "vatRate")
	}
	if raw.IsAssujetti == nil {
		missing = append(missing, "isAssujetti")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: amount record is missing %s", ErrInvalidArgument, strings.Join(missing, ", "))
	}

	*r = Record{
		AmountExcludingVat: *raw.AmountExcludingVat,
		VatRate:            *raw.VatRate,
		IsAssujetti:        *raw.IsAssujetti,
	}
	return nil
}

func newAmount(excludingVAT float64, v VAT) (Amount, error) {
	if math.IsNaN(excludingVAT) || math.IsInf(excludingVAT, 0) {
		return Amount{}, fmt.Errorf("%w: amount must be a finite number", ErrInvalidArgument)
	}
	if excludingVAT < 0 {
		return Amount{}, fmt.Errorf("%w: amount can not be lower than zero", ErrInvalidArgument)
	}
	return Amount{excludingVAT: excludingVAT, vat: v}, nil
}

// FromRecord rebuilds an Amount from its Record.
// When IsAssujetti is false the band is NotAssujetti and VatRate is not looked at.
func FromRecord(r Record) (Amount, error) {
	v := NotAssujetti
	if r.IsAssujetti {
		var err error
		if v, err = VATFromRate(r.VatRate); err != nil {
			return Amount{}, err
		}
	}
	return newAmount(r.AmountExcludingVat, v)
}

func FromExcludingVAT(amount float64, v VAT) (Amount, error) {
	return newAmount(amount, v)
}

func FromIncludingVAT(amount float64, v VAT) (Amount, error) {
	return newAmount(InclusiveToExclusive(amount, v), v)
}

func FromIncludingVATAtTwentyPercent(amount float64) (Amount, error) {
	return FromIncludingVAT(amount, TwentyPercent)
}

// Zero is the neutral amount: nothing, at 0% VAT. It is subject to VAT.
func Zero() Amount {
	return Amount{vat: ZeroPercent}
}

func (a Amount) IsEmpty() bool {
	return a.excludingVAT == 0
}

func (a Amount) IsNotEmpty() bool {
	return !a.IsEmpty()
}

func (a Amount) IncludingVAT() (float64, error) {
	if err := a.assertAssujetti(); err != nil {
		return 0, err
	}
	return Round2(a.excludingVAT * (1 + a.VATRate())), nil
}

func (a Amount) ExcludingVAT() (float64, error) {
	if err := a.assertAssujetti(); err != nil {
		return 0, err
	}
	return Round2(a.excludingVAT), nil
}

// Value is the figure of an amount outside the scope of VAT.
func (a Amount) Value() (float64, error) {
	if err := a.assertNotAssujetti(); err != nil {
		return 0, err
	}
	return Round2(a.excludingVAT), nil
}

// VATAmount is the rounded exclusive figure times the rate.
func (a Amount) VATAmount() (float64, error) {
	excl, err := a.ExcludingVAT()
	if err != nil {
		return 0, err
	}
	return excl * a.VATRate(), nil
}

func (a Amount) VAT() VAT {
	return a.vat
}

func (a Amount) VATRate() float64 {
	return a.vat.Rate()
}

func (a Amount) VATRatePercentage() float64 {
	return a.VATRate() * 100
}

func (a Amount) IsAssujetti() bool {
	return a.vat.IsAssujetti()
}

// Float64 returns ExcludingVAT or Value, whichever applies.
// Do not use it where the VAT treatment of the figure matters.
func (a Amount) Float64() float64 {
	var (
		f   float64
		err error
	)
	if a.IsAssujetti() {
		f, err = a.ExcludingVAT()
	} else {
		f, err = a.Value()
	}
	if err != nil {
		// unreachable: the branch above picks the accessor matching the band
		panic(err)
	}
	return f
}

// Record returns the unrounded exclusive magnitude with the resolved rate.
func (a Amount) Record() Record {
	return Record{
		AmountExcludingVat: a.excludingVAT,
		VatRate:            a.VATRate(),
		IsAssujetti:        a.IsAssujetti(),
	}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Record())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	parsed, err := FromRecord(r)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Amount) assertAssujetti() error {
	if !a.IsAssujetti() {
		return fmt.Errorf("%w: current amount is not assujetti to VAT, you should use Value() instead", ErrAmbiguity)
	}
	return nil
}

func (a Amount) assertNotAssujetti() error {
	if a.IsAssujetti() {
		return fmt.Errorf("%w: current amount is assujetti to VAT, you should use IncludingVAT() or ExcludingVAT()", ErrAmbiguity)
	}
	return nil
}
