package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWeightToVori(t *testing.T) {
	// 23.328 grams is exactly 2 vori
	got := WeightToVori(decimal.RequireFromString("23.328"), "gram")
	assert.True(t, got.Equal(decimal.NewFromInt(2)), "expected 2, got %s", got)

	// Vori weights pass through unchanged
	got = WeightToVori(decimal.RequireFromString("3.5"), "vori")
	assert.True(t, got.Equal(decimal.RequireFromString("3.5")))

	// Unknown units are treated as vori
	got = WeightToVori(decimal.NewFromInt(1), "ounce")
	assert.True(t, got.Equal(decimal.NewFromInt(1)))
}

func TestVoriToGrams(t *testing.T) {
	got := VoriToGrams(decimal.NewFromInt(2))
	assert.True(t, got.Equal(decimal.RequireFromString("23.328")), "expected 23.328, got %s", got)

	got = VoriToGrams(decimal.RequireFromString("0.5"))
	assert.True(t, got.Equal(decimal.RequireFromString("5.832")), "expected 5.832, got %s", got)
}

func TestStockDerived(t *testing.T) {
	marketValue, gainLoss, gainLossPct := StockDerived(
		decimal.NewFromInt(10),
		decimal.NewFromInt(150),
		decimal.NewFromInt(180),
	)
	assert.True(t, marketValue.Equal(decimal.NewFromInt(1800)), "expected 1800, got %s", marketValue)
	assert.True(t, gainLoss.Equal(decimal.NewFromInt(300)), "expected 300, got %s", gainLoss)
	assert.True(t, gainLossPct.Equal(decimal.NewFromInt(20)), "expected 20, got %s", gainLossPct)

	// A zero cost basis yields a zero percentage instead of dividing by zero
	_, _, gainLossPct = StockDerived(
		decimal.NewFromInt(10),
		decimal.Zero,
		decimal.NewFromInt(50),
	)
	assert.True(t, gainLossPct.IsZero())

	// Losses come out negative
	_, gainLoss, gainLossPct = StockDerived(
		decimal.NewFromInt(10),
		decimal.NewFromInt(200),
		decimal.NewFromInt(150),
	)
	assert.True(t, gainLoss.Equal(decimal.NewFromInt(-500)))
	assert.True(t, gainLossPct.Equal(decimal.NewFromInt(-25)))
}

func TestGoldDerived(t *testing.T) {
	currentValue, gainLoss := GoldDerived(
		decimal.NewFromInt(2),
		decimal.NewFromInt(100000),
		decimal.NewFromInt(120000),
	)
	assert.True(t, currentValue.Equal(decimal.NewFromInt(240000)), "expected 240000, got %s", currentValue)
	assert.True(t, gainLoss.Equal(decimal.NewFromInt(40000)), "expected 40000, got %s", gainLoss)
}

func TestAnnualRent(t *testing.T) {
	got := AnnualRent(decimal.NewFromInt(35000))
	assert.True(t, got.Equal(decimal.NewFromInt(420000)), "expected 420000, got %s", got)

	assert.True(t, AnnualRent(decimal.Zero).IsZero())
}

func TestNisabThreshold(t *testing.T) {
	// Gold standard: 87.48 g at 75/g
	got := NisabThreshold(true, decimal.NewFromInt(75), decimal.NewFromInt(1))
	assert.True(t, got.Equal(decimal.RequireFromString("6561")), "expected 6561, got %s", got)

	// Silver standard: 612.36 g at 0.90/g
	got = NisabThreshold(false, decimal.NewFromInt(75), decimal.RequireFromString("0.90"))
	assert.True(t, got.Equal(decimal.RequireFromString("551.124")), "expected 551.124, got %s", got)
}
