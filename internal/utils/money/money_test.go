package money_test

import (
	"testing"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name        string
		base        decimal.Decimal
		teamSupport decimal.Decimal
		coverFees   bool
		wantFees    string
		wantTotal   string
	}{
		{
			name:        "fees recorded but not charged",
			base:        decimal.NewFromInt(100),
			teamSupport: decimal.Zero,
			coverFees:   false,
			wantFees:    "3",
			wantTotal:   "100",
		},
		{
			name:        "fees charged when covered",
			base:        decimal.NewFromInt(100),
			teamSupport: decimal.Zero,
			coverFees:   true,
			wantFees:    "3",
			wantTotal:   "103",
		},
		{
			name:        "team support enters the fee base",
			base:        decimal.NewFromInt(50),
			teamSupport: decimal.NewFromInt(10),
			coverFees:   true,
			wantFees:    "1.8",
			wantTotal:   "61.8",
		},
		{
			name:        "rounding applied once half up",
			base:        decimal.NewFromFloat(10.25),
			teamSupport: decimal.Zero,
			coverFees:   true,
			// 10.25 * 0.03 = 0.3075 -> 0.31
			wantFees:  "0.31",
			wantTotal: "10.56",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees, total := money.ComputeTotals(tt.base, tt.teamSupport, tt.coverFees)
			assert.Equal(t, tt.wantFees, fees.String())
			assert.Equal(t, tt.wantTotal, total.String())
		})
	}
}

func TestResolveUSDAmount(t *testing.T) {
	tests := []struct {
		name     string
		donation domain.Donation
		want     string
	}{
		{
			name: "allocation USD sum takes precedence",
			donation: domain.Donation{
				Amount:      decimal.NewFromInt(500),
				AmountUSD:   decimal.NewFromInt(90),
				TotalAmount: decimal.NewFromInt(500),
				Items: []domain.DonationItem{
					{AmountUSD: decimal.NewFromInt(60)},
					{AmountUSD: decimal.NewFromInt(25)},
				},
				CategoryItems: []domain.DonationCategoryItem{
					{AmountUSD: decimal.NewFromInt(5)},
				},
			},
			want: "90",
		},
		{
			name: "falls back to donation amountUSD",
			donation: domain.Donation{
				Amount:      decimal.NewFromInt(500),
				AmountUSD:   decimal.NewFromInt(90),
				TotalAmount: decimal.NewFromInt(500),
			},
			want: "90",
		},
		{
			name: "falls back to totalAmount",
			donation: domain.Donation{
				Amount:      decimal.NewFromInt(500),
				TotalAmount: decimal.NewFromInt(515),
			},
			want: "515",
		},
		{
			name: "falls back to amount",
			donation: domain.Donation{
				Amount: decimal.NewFromInt(500),
			},
			want: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.ResolveUSDAmount(&tt.donation)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
