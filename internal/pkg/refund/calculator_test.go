package refund

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate_RuleSelection(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":7,"refundRate":1.0},{"daysBefore":0,"refundRate":0.0}],"fee":{"type":"FIXED","amount":0}}`)
	total := decimal.NewFromInt(200000)
	checkIn := day(2026, 9, 20)

	tests := []struct {
		name       string
		cancelDate time.Time
		want       string
	}{
		{"well before threshold", day(2026, 9, 10), "200000.00"},
		{"exactly at threshold", day(2026, 9, 13), "200000.00"},
		{"inside forfeit window", day(2026, 9, 17), "0.00"},
		{"day of check-in", day(2026, 9, 20), "0.00"},
		{"after check-in", day(2026, 9, 22), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(snapshot, total, tt.cancelDate, checkIn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCalculate_DuplicateThresholdKeepsFirst(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":5,"refundRate":0.8},{"daysBefore":5,"refundRate":0.2}]}`)
	got, err := Calculate(snapshot, decimal.NewFromInt(100000), day(2026, 9, 10), day(2026, 9, 20))
	require.NoError(t, err)
	assert.Equal(t, "80000.00", got.StringFixed(2))
}

func TestCalculate_NoMatchingRuleRefundsNothing(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":7,"refundRate":1.0}]}`)
	got, err := Calculate(snapshot, decimal.NewFromInt(100000), day(2026, 9, 18), day(2026, 9, 20))
	require.NoError(t, err)
	assert.Equal(t, "0.00", got.StringFixed(2))
}

func TestCalculate_FixedFee(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":0,"refundRate":1.0}],"fee":{"type":"FIXED","amount":5000}}`)
	got, err := Calculate(snapshot, decimal.NewFromInt(100000), day(2026, 9, 10), day(2026, 9, 20))
	require.NoError(t, err)
	assert.Equal(t, "95000.00", got.StringFixed(2))
}

func TestCalculate_PercentFee(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":0,"refundRate":1.0}],"fee":{"type":"PERCENT","amount":0.1}}`)
	got, err := Calculate(snapshot, decimal.NewFromInt(100000), day(2026, 9, 10), day(2026, 9, 20))
	require.NoError(t, err)
	assert.Equal(t, "90000.00", got.StringFixed(2))
}

func TestCalculate_UnknownFeeTypeIgnored(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":0,"refundRate":0.5}],"fee":{"type":"WEIRD","amount":9999}}`)
	got, err := Calculate(snapshot, decimal.NewFromInt(100000), day(2026, 9, 10), day(2026, 9, 20))
	require.NoError(t, err)
	assert.Equal(t, "50000.00", got.StringFixed(2))
}

func TestCalculate_FeeClampedAtZero(t *testing.T) {
	snapshot := []byte(`{"rules":[{"daysBefore":0,"refundRate":0.1}],"fee":{"type":"FIXED","amount":50000}}`)
	got, err := Calculate(snapshot, decimal.NewFromInt(100000), day(2026, 9, 10), day(2026, 9, 20))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "refund below fee must clamp to zero, got %s", got)
}

func TestCalculate_TolerantParsing(t *testing.T) {
	total := decimal.NewFromInt(100000)
	cancel, checkIn := day(2026, 9, 10), day(2026, 9, 20)

	t.Run("malformed rule entries skipped", func(t *testing.T) {
		snapshot := []byte(`{"rules":[42,{"refundRate":1.0},{"daysBefore":"x","refundRate":1.0},{"daysBefore":0,"refundRate":0.7}]}`)
		got, err := Calculate(snapshot, total, cancel, checkIn)
		require.NoError(t, err)
		assert.Equal(t, "70000.00", got.StringFixed(2))
	})

	t.Run("numeric strings accepted", func(t *testing.T) {
		snapshot := []byte(`{"rules":[{"daysBefore":"7","refundRate":"0.5"}]}`)
		got, err := Calculate(snapshot, total, cancel, checkIn)
		require.NoError(t, err)
		assert.Equal(t, "50000.00", got.StringFixed(2))
	})

	t.Run("bad fee degrades to zero", func(t *testing.T) {
		snapshot := []byte(`{"rules":[{"daysBefore":0,"refundRate":1.0}],"fee":{"type":"FIXED","amount":"oops"}}`)
		got, err := Calculate(snapshot, total, cancel, checkIn)
		require.NoError(t, err)
		assert.Equal(t, "100000.00", got.StringFixed(2))
	})

	t.Run("empty rules array refunds nothing", func(t *testing.T) {
		got, err := Calculate([]byte(`{"rules":[]}`), total, cancel, checkIn)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestCalculate_StructuralErrors(t *testing.T) {
	total := decimal.NewFromInt(100000)
	cancel, checkIn := day(2026, 9, 10), day(2026, 9, 20)

	for _, snapshot := range []string{
		`not json at all`,
		`[]`,
		`{"fee":{"type":"FIXED","amount":0}}`,
		`{"rules":{"daysBefore":7}}`,
	} {
		_, err := Calculate([]byte(snapshot), total, cancel, checkIn)
		assert.ErrorIs(t, err, ErrInvalidPolicy, "snapshot %q", snapshot)
	}
}

func TestDaysBefore(t *testing.T) {
	assert.Equal(t, 10, DaysBefore(day(2026, 9, 10), day(2026, 9, 20)))
	assert.Equal(t, 0, DaysBefore(day(2026, 9, 20), day(2026, 9, 20)))
	assert.Equal(t, 0, DaysBefore(day(2026, 9, 25), day(2026, 9, 20)))

	// partial days truncate: 23:59 the day before is still one whole day
	assert.Equal(t, 1, DaysBefore(
		time.Date(2026, 9, 19, 23, 59, 0, 0, time.UTC),
		day(2026, 9, 20),
	))
}
