package domain_test

import (
	"testing"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClampBillingDay(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want int
	}{
		{name: "in range", day: 10, want: 10},
		{name: "upper bound", day: 28, want: 28},
		{name: "above upper bound", day: 31, want: 28},
		{name: "zero", day: 0, want: 1},
		{name: "negative", day: -3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClampBillingDay(tt.day))
		})
	}
}

func TestAddCalendarMonth(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "same day next month",
			from: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "jan 31 clamps to feb 29 in a leap year",
			from: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "jan 31 clamps to feb 28 in a common year",
			from: time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "dec rolls into january",
			from: time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "may 31 clamps to jun 30",
			from: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AddCalendarMonth(tt.from))
		})
	}
}

func TestNextBillingFromDay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		day  int
		want time.Time
	}{
		{
			name: "billing day already passed this month",
			now:  time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC),
			day:  10,
			want: time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "billing day still ahead this month",
			now:  time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC),
			day:  20,
			want: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "same day rolls to next month",
			now:  time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			day:  10,
			want: time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day above 28 is clamped",
			now:  time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			day:  31,
			want: time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "december rollover",
			now:  time.Date(2023, time.December, 28, 0, 0, 0, 0, time.UTC),
			day:  5,
			want: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NextBillingFromDay(tt.now, tt.day))
		})
	}
}
