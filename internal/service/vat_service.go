package service

import (
	"context"
	"errors"
	"fmt"

	"financialtools/internal/logging"
	"financialtools/internal/metrics"
	"financialtools/pkg/money"

	"github.com/shopspring/decimal"
)

// Basis and direction enum constants
const (
	BasisExclusive = "EXCLUSIVE"
	BasisInclusive = "INCLUSIVE"

	DirectionToExclusive = "TO_EXCLUSIVE"
	DirectionToInclusive = "TO_INCLUSIVE"
)

// ErrRateAbsent is returned by DescribeRate when neither a value nor a fallback was given.
var ErrRateAbsent = errors.New("no rate or fallback provided")

// --- DTOs ---

type QuoteRequest struct {
	Amount      string   `json:"amount" binding:"required"` // Decimal string, e.g. "120.00"
	Basis       string   `json:"basis" binding:"required,oneof=EXCLUSIVE INCLUSIVE"`
	VATRate     *float64 `json:"vat_rate"`     // Exact band rate, e.g. 0.055; 0.2 when omitted
	IsAssujetti *bool    `json:"is_assujetti"` // Defaults to true
}

type ConvertRequest struct {
	Amount    string   `json:"amount" binding:"required"`
	Direction string   `json:"direction" binding:"required,oneof=TO_EXCLUSIVE TO_INCLUSIVE"`
	VATRate   *float64 `json:"vat_rate" binding:"required"`
}

// RateRequest resolves a rate from optional values: Rate, then Percentage, then DefaultRate, then DefaultPercentage.
type RateRequest struct {
	Rate              *float64 `form:"rate"`
	Percentage        *float64 `form:"percentage"`
	DefaultRate       *float64 `form:"default_rate"`
	DefaultPercentage *float64 `form:"default_percentage"`
}

type VATBandResponse struct {
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
	Percentage  float64 `json:"percentage"`
	Label       string  `json:"label"`
	IsAssujetti bool    `json:"is_assujetti"`
}

// AmountResponse exposes only the figures that are meaningful for the amount's VAT treatment.
type AmountResponse struct {
	Record            money.Record `json:"record"`
	IncludingVAT      *float64     `json:"including_vat,omitempty"`
	ExcludingVAT      *float64     `json:"excluding_vat,omitempty"`
	Value             *float64     `json:"value,omitempty"`
	VATAmount         *float64     `json:"vat_amount,omitempty"`
	VATBand           string       `json:"vat_band"`
	VATRate           float64      `json:"vat_rate"`
	VATRatePercentage float64      `json:"vat_rate_percentage"`
	VATLabel          string       `json:"vat_label"`
	RateLabel         string       `json:"rate_label"`
	IsAssujetti       bool         `json:"is_assujetti"`
	IsEmpty           bool         `json:"is_empty"`
	Amount            float64      `json:"amount"`
}

type ConvertResponse struct {
	Direction string  `json:"direction"`
	VATBand   string  `json:"vat_band"`
	Amount    float64 `json:"amount"`
	Result    float64 `json:"result"`  // Unrounded
	Rounded   float64 `json:"rounded"` // Two decimals
}

type RateResponse struct {
	Rate       float64 `json:"rate"`
	Percentage float64 `json:"percentage"`
	Label      string  `json:"label"`
}

// --- Interface ---

type VATService interface {
	ListBands(ctx context.Context) []VATBandResponse
	Quote(ctx context.Context, req QuoteRequest) (AmountResponse, error)
	DecodeRecord(ctx context.Context, record money.Record) (AmountResponse, error)
	Convert(ctx context.Context, req ConvertRequest) (ConvertResponse, error)
	DescribeRate(ctx context.Context, req RateRequest) (RateResponse, error)
}

type vatService struct{}

func NewVATService() VATService {
	return &vatService{}
}

// --- Implementation ---

func (s *vatService) ListBands(ctx context.Context) []VATBandResponse {
	bands := money.Bands()
	res := make([]VATBandResponse, 0, len(bands))
	for _, v := range bands {
		res = append(res, VATBandResponse{
			Name:        v.Name(),
			Rate:        v.Rate(),
			Percentage:  v.Percentage(),
			Label:       v.String(),
			IsAssujetti: v.IsAssujetti(),
		})
	}
	return res
}

func (s *vatService) Quote(ctx context.Context, req QuoteRequest) (AmountResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return AmountResponse{}, s.fail(ctx, "quote", err)
	}

	a, err := buildAmount(amount, req)
	if err != nil {
		return AmountResponse{}, s.fail(ctx, "quote", err)
	}

	res, err := toAmountResponse(a)
	if err != nil {
		return AmountResponse{}, s.fail(ctx, "quote", err)
	}

	metrics.IncQuote(a.VAT().Name(), req.Basis)
	logging.FromCtx(ctx).Debug("amount quoted", "band", a.VAT().Name(), "basis", req.Basis, "amount", req.Amount)

	return res, nil
}

func (s *vatService) DecodeRecord(ctx context.Context, record money.Record) (AmountResponse, error) {
	if !record.IsAssujetti && record.VatRate != 0 {
		// FromRecord does not validate the rate of a non assujetti record
		logging.FromCtx(ctx).Warn("rate ignored on non assujetti record", "vat_rate", record.VatRate)
	}

	a, err := money.FromRecord(record)
	if err != nil {
		return AmountResponse{}, s.fail(ctx, "decode", err)
	}

	res, err := toAmountResponse(a)
	if err != nil {
		return AmountResponse{}, s.fail(ctx, "decode", err)
	}
	return res, nil
}

func (s *vatService) Convert(ctx context.Context, req ConvertRequest) (ConvertResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return ConvertResponse{}, s.fail(ctx, "convert", err)
	}
	if req.VATRate == nil {
		return ConvertResponse{}, s.fail(ctx, "convert", fmt.Errorf("%w: vat_rate is required", money.ErrInvalidArgument))
	}

	v, err := money.VATFromRate(*req.VATRate)
	if err != nil {
		return ConvertResponse{}, s.fail(ctx, "convert", err)
	}

	var result float64
	switch req.Direction {
	case DirectionToExclusive:
		result = money.InclusiveToExclusive(amount, v)
	case DirectionToInclusive:
		result = money.ExclusiveToInclusive(amount, v)
	default:
		return ConvertResponse{}, s.fail(ctx, "convert", fmt.Errorf("%w: unknown direction %q", money.ErrInvalidArgument, req.Direction))
	}

	return ConvertResponse{
		Direction: req.Direction,
		VATBand:   v.Name(),
		Amount:    amount,
		Result:    result,
		Rounded:   money.Round2(result),
	}, nil
}

func (s *vatService) DescribeRate(ctx context.Context, req RateRequest) (RateResponse, error) {
	// a given value of either family wins over any fallback
	resolved := money.RateFromNullable(req.Rate, nil)
	if !resolved.Valid {
		resolved = money.RateFromNullablePercentage(req.Percentage, nil)
	}
	if !resolved.Valid {
		resolved = money.RateFromNullable(nil, req.DefaultRate)
	}
	if !resolved.Valid {
		resolved = money.RateFromNullablePercentage(nil, req.DefaultPercentage)
	}
	if !resolved.Valid {
		return RateResponse{}, s.fail(ctx, "rate", ErrRateAbsent)
	}

	return RateResponse{
		Rate:       resolved.Rate.Fraction(),
		Percentage: resolved.Rate.Percentage(),
		Label:      resolved.Rate.String(),
	}, nil
}

// --- Helpers ---

func parseAmount(raw string) (float64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount value: %v", money.ErrInvalidArgument, err)
	}
	return d.InexactFloat64(), nil
}

func buildAmount(amount float64, req QuoteRequest) (money.Amount, error) {
	if req.IsAssujetti != nil && !*req.IsAssujetti {
		if req.Basis == BasisInclusive {
			return money.FromIncludingVAT(amount, money.NotAssujetti)
		}
		return money.FromExcludingVAT(amount, money.NotAssujetti)
	}

	if req.VATRate == nil {
		if req.Basis == BasisInclusive {
			return money.FromIncludingVATAtTwentyPercent(amount)
		}
		return money.FromExcludingVAT(amount, money.TwentyPercent)
	}

	v, err := money.VATFromRate(*req.VATRate)
	if err != nil {
		return money.Amount{}, err
	}
	if req.Basis == BasisInclusive {
		return money.FromIncludingVAT(amount, v)
	}
	return money.FromExcludingVAT(amount, v)
}

func (s *vatService) fail(ctx context.Context, op string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, money.ErrInvalidArgument):
		kind = "invalid_argument"
	case errors.Is(err, money.ErrAmbiguity):
		kind = "ambiguity"
	case errors.Is(err, ErrRateAbsent):
		kind = "rate_absent"
	}
	metrics.IncError(kind)
	logging.FromCtx(ctx).Info("calculation rejected", "op", op, "kind", kind, "error", err)
	return err
}

// --- Mapping ---

func toAmountResponse(a money.Amount) (AmountResponse, error) {
	resp := AmountResponse{
		Record:            a.Record(),
		VATBand:           a.VAT().Name(),
		VATRate:           a.VATRate(),
		VATRatePercentage: a.VATRatePercentage(),
		VATLabel:          a.VAT().String(),
		RateLabel:         money.NewRate(a.VATRate()).String(),
		IsAssujetti:       a.IsAssujetti(),
		IsEmpty:           a.IsEmpty(),
		Amount:            a.Float64(),
	}

	if !a.IsAssujetti() {
		value, err := a.Value()
		if err != nil {
			return AmountResponse{}, err
		}
		resp.Value = &value
		return resp, nil
	}

	incl, err := a.IncludingVAT()
	if err != nil {
		return AmountResponse{}, err
	}
	excl, err := a.ExcludingVAT()
	if err != nil {
		return AmountResponse{}, err
	}
	vatAmount, err := a.VATAmount()
	if err != nil {
		return AmountResponse{}, err
	}
	resp.IncludingVAT = &incl
	resp.ExcludingVAT = &excl
	resp.VATAmount = &vatAmount

	return resp, nil
}
