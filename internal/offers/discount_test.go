package offers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		rule       *Rule
		items      []Item
		wantAmount decimal.Decimal
		wantDesc   string
		wantErr    error
	}{
		{
			name: "percentage 20% off 300 subtotal",
			rule: &Rule{
				Code:         "CHURRO20",
				DiscountType: DiscountPercentage,
				Value:        d("20"),
				Description:  "20% off",
			},
			items: []Item{
				{ItemID: "churros-3", Price: d("150"), Quantity: 2},
			},
			wantAmount: d("60"),
			wantDesc:   "20% off",
		},
		{
			name: "percentage rounds to whole currency units half up",
			rule: &Rule{
				Code:         "TENOFF",
				DiscountType: DiscountPercentage,
				Value:        d("10"),
				Description:  "10% off",
			},
			items: []Item{
				// 10% of 225 = 22.5, rounds half away from zero to 23.
				{ItemID: "churro-dog", Price: d("225"), Quantity: 1},
			},
			wantAmount: d("23"),
			wantDesc:   "10% off",
		},
		{
			name: "fixed 40 off",
			rule: &Rule{
				Code:         "COMBODEAL",
				DiscountType: DiscountFixed,
				Value:        d("40"),
				Description:  "40 off",
			},
			items: []Item{
				{ItemID: "churros-3", Price: d("150"), Quantity: 1},
				{ItemID: "hot-chocolate", Price: d("190"), Quantity: 1},
			},
			wantAmount: d("40"),
			wantDesc:   "40 off",
		},
		{
			name: "fixed discount capped at subtotal",
			rule: &Rule{
				Code:         "BIG",
				DiscountType: DiscountFixed,
				Value:        d("500"),
				Description:  "500 off",
			},
			items: []Item{
				{ItemID: "espresso", Price: d("120"), Quantity: 1},
			},
			wantAmount: d("120"),
			wantDesc:   "500 off",
		},
		{
			name: "free lowest removes cheapest unit price",
			rule: &Rule{
				Code:         "FREECHURRO",
				DiscountType: DiscountFreeLowest,
				Value:        decimal.Zero,
				Description:  "cheapest free",
			},
			items: []Item{
				{ItemID: "churros-3", Price: d("150"), Quantity: 2},
				{ItemID: "dip-hazelnut", Price: d("50"), Quantity: 1},
			},
			wantAmount: d("50"),
			wantDesc:   "cheapest free",
		},
		{
			name: "min items not met",
			rule: &Rule{
				Code:         "COMBODEAL",
				DiscountType: DiscountFixed,
				Value:        d("40"),
				MinItems:     2,
				Description:  "40 off",
			},
			items: []Item{
				{ItemID: "churros-3", Price: d("150"), Quantity: 1},
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "min items satisfied by quantity",
			rule: &Rule{
				Code:         "COMBODEAL",
				DiscountType: DiscountFixed,
				Value:        d("40"),
				MinItems:     2,
				Description:  "40 off",
			},
			items: []Item{
				{ItemID: "churros-3", Price: d("150"), Quantity: 2},
			},
			wantAmount: d("40"),
			wantDesc:   "40 off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.rule, tt.items)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantAmount.Equal(got.Amount), "want %s, got %s", tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantDesc, got.Description)
		})
	}
}

func TestApply_UnsupportedType(t *testing.T) {
	_, err := Apply(&Rule{Code: "X", DiscountType: "bogus"}, []Item{
		{ItemID: "churros-3", Price: d("150"), Quantity: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported discount type")
}

func TestApply_FreeLowestEmptyCart(t *testing.T) {
	got, err := Apply(&Rule{Code: "X", DiscountType: DiscountFreeLowest}, nil)
	require.NoError(t, err)
	assert.True(t, got.Amount.IsZero())
}
