// Package refund computes refund amounts from a frozen policy snapshot.
//
// Parsing is deliberately tolerant: only structural malformation (the
// document is not JSON, or "rules" is not an array) is an error. Missing or
// bad individual fields degrade to zero-effect defaults (rate 0, fee 0)
// instead of failing a cancellation.
package refund

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidPolicy = errors.New("invalid refund policy")

const (
	feeTypeFixed   = "FIXED"
	feeTypePercent = "PERCENT"
)

// Calculate evaluates the rule document against the cancellation date.
//
// Document shape:
//
//	{"rules":[{"daysBefore":7,"refundRate":1.0},{"daysBefore":0,"refundRate":0.0}],
//	 "fee":{"type":"FIXED","amount":0}}
//
// Among rules whose daysBefore threshold is <= the actual whole-day count
// before check-in, the largest threshold wins; duplicate thresholds keep the
// first occurrence. The result is clamped at zero and rounded to 2 decimal
// places, half up.
func Calculate(snapshot []byte, bookingTotal decimal.Decimal, cancelDate, checkInDate time.Time) (decimal.Decimal, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(snapshot, &root); err != nil {
		return decimal.Zero, ErrInvalidPolicy
	}

	var rules []json.RawMessage
	rulesRaw, ok := root["rules"]
	if !ok || json.Unmarshal(rulesRaw, &rules) != nil {
		return decimal.Zero, ErrInvalidPolicy
	}

	daysBefore := DaysBefore(cancelDate, checkInDate)

	refundRate := decimal.Zero
	selected := false
	var selectedThreshold int64
	for _, raw := range rules {
		var rule map[string]json.RawMessage
		if err := json.Unmarshal(raw, &rule); err != nil {
			continue
		}
		thresholdDec, ok := decimalField(rule, "daysBefore")
		if !ok {
			continue
		}
		rate, ok := decimalField(rule, "refundRate")
		if !ok {
			continue
		}
		threshold := thresholdDec.IntPart()

		if threshold <= int64(daysBefore) && (!selected || threshold > selectedThreshold) {
			selected = true
			selectedThreshold = threshold
			refundRate = rate
		}
	}

	feeType := feeTypeFixed
	feeAmount := decimal.Zero
	var fee map[string]json.RawMessage
	if feeRaw, ok := root["fee"]; ok && json.Unmarshal(feeRaw, &fee) == nil {
		var ft string
		if ftRaw, ok := fee["type"]; ok && json.Unmarshal(ftRaw, &ft) == nil {
			feeType = ft
		}
		if amt, ok := decimalField(fee, "amount"); ok {
			feeAmount = amt
		}
	}

	gross := bookingTotal.Mul(refundRate)
	var net decimal.Decimal
	switch strings.ToUpper(feeType) {
	case feeTypeFixed:
		net = gross.Sub(feeAmount)
	case feeTypePercent:
		net = gross.Sub(bookingTotal.Mul(feeAmount))
	default:
		net = gross
	}

	if net.IsNegative() {
		net = decimal.Zero
	}
	return net.Round(2), nil
}

// DaysBefore is the whole-day count from cancelDate to checkInDate,
// clamped at zero. Cancelling after check-in refunds at the 0-day rate.
func DaysBefore(cancelDate, checkInDate time.Time) int {
	days := int(truncateDay(checkInDate).Sub(truncateDay(cancelDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// decimalField accepts JSON numbers and numeric strings; anything else
// reports absent, which skips the rule or zeroes the fee.
func decimalField(obj map[string]json.RawMessage, key string) (decimal.Decimal, bool) {
	raw, ok := obj[key]
	if !ok {
		return decimal.Zero, false
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if d, err := decimal.NewFromString(num.String()); err == nil {
			return d, true
		}
		return decimal.Zero, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}
