package offers

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/churro-storefront/internal/catalog/data"
)

func TestLoadVouchers_EmbeddedCampaign(t *testing.T) {
	set, err := LoadVouchers(data.Vouchers)
	require.NoError(t, err)

	assert.Greater(t, set.Len(), 0)
	assert.True(t, set.Contains("CHURRO20"))
	assert.True(t, set.Contains("COMBODEAL"))
	assert.True(t, set.Contains("FREECHURRO"))
	assert.False(t, set.Contains("short"))
	assert.False(t, set.Contains("WAYTOOLONGCODE"))
}

func TestReadVouchers_LengthBounds(t *testing.T) {
	set, err := readVouchers(strings.NewReader("TOOSHRT\nGOODCODE\nTHISONEISTOOLONG\nALSOGOOD99\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("GOODCODE"))
	assert.True(t, set.Contains("ALSOGOOD99"))
	assert.False(t, set.Contains("TOOSHRT"))
}

func TestResolve_NamedRule(t *testing.T) {
	set, err := LoadVouchers(data.Vouchers)
	require.NoError(t, err)

	rule, err := set.Resolve("CHURRO20")
	require.NoError(t, err)
	assert.Equal(t, DiscountPercentage, rule.DiscountType)
	assert.True(t, decimal.NewFromInt(20).Equal(rule.Value))
}

func TestResolve_DefaultRuleForUnnamedMember(t *testing.T) {
	set, err := readVouchers(strings.NewReader("SAVESOME1\n"))
	require.NoError(t, err)

	rule, err := set.Resolve("SAVESOME1")
	require.NoError(t, err)
	assert.Equal(t, "SAVESOME1", rule.Code)
	assert.Equal(t, DiscountPercentage, rule.DiscountType)
	assert.True(t, decimal.NewFromInt(10).Equal(rule.Value))
}

func TestResolve_UnknownCode(t *testing.T) {
	set, err := LoadVouchers(data.Vouchers)
	require.NoError(t, err)

	_, err = set.Resolve("NOTACODE1")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestValidate_EndToEnd(t *testing.T) {
	set, err := LoadVouchers(data.Vouchers)
	require.NoError(t, err)

	items := []Item{
		{ItemID: "churros-3", Price: decimal.NewFromInt(150), Quantity: 2},
	}

	discount, err := set.Validate("CHURRO20", items)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(discount.Amount))

	_, err = set.Validate("NOTACODE1", items)
	assert.ErrorIs(t, err, ErrInvalidCode)

	// COMBODEAL needs two units in the cart.
	_, err = set.Validate("COMBODEAL", []Item{
		{ItemID: "churros-3", Price: decimal.NewFromInt(150), Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidCode)
}
