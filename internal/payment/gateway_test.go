package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_Charge(t *testing.T) {
	gw := NewMock()

	err := gw.Charge(context.Background(), decimal.NewFromInt(300))
	assert.NoError(t, err)
}

func TestMock_NonPositiveAmount(t *testing.T) {
	gw := NewMock()

	assert.ErrorIs(t, gw.Charge(context.Background(), decimal.Zero), ErrDeclined)
	assert.ErrorIs(t, gw.Charge(context.Background(), decimal.NewFromInt(-10)), ErrDeclined)
}

func TestDeclining_AlwaysDeclines(t *testing.T) {
	gw := NewDeclining()

	err := gw.Charge(context.Background(), decimal.NewFromInt(300))
	require.ErrorIs(t, err, ErrDeclined)
}

func TestMock_RespectsContext(t *testing.T) {
	gw := NewMock()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gw.Charge(ctx, decimal.NewFromInt(300))
	assert.ErrorIs(t, err, context.Canceled)
}
