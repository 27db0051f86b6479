package service

import "github.com/shopspring/decimal"

// GramsPerVori is the gold weight conversion factor: 1 vori = 11.664 grams
var GramsPerVori = decimal.RequireFromString("11.664")

// Nisab thresholds and zakat rate
var (
	GoldNisabGrams   = decimal.RequireFromString("87.48")
	SilverNisabGrams = decimal.RequireFromString("612.36")
	ZakatRate        = decimal.RequireFromString("0.025")
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// WeightToVori normalizes a gold weight to vori. Unit may be "gram" or
// "vori"; anything else is treated as vori.
func WeightToVori(weight decimal.Decimal, unit string) decimal.Decimal {
	if unit == "gram" {
		return weight.Div(GramsPerVori)
	}
	return weight
}

// VoriToGrams converts a vori weight back to grams, rounded to 4 places
func VoriToGrams(weightVori decimal.Decimal) decimal.Decimal {
	return weightVori.Mul(GramsPerVori).Round(4)
}

// StockDerived computes market value, gain/loss and gain/loss percent for a
// stock position. The percent is 0 when the cost basis is 0.
func StockDerived(shares, avgCost, currentPrice decimal.Decimal) (marketValue, gainLoss, gainLossPct decimal.Decimal) {
	marketValue = shares.Mul(currentPrice)
	cost := shares.Mul(avgCost)
	gainLoss = marketValue.Sub(cost)
	if !cost.IsZero() {
		gainLossPct = gainLoss.Div(cost).Mul(hundred).Round(2)
	}
	return marketValue, gainLoss, gainLossPct
}

// GoldDerived computes current value and gain/loss for a gold holding
func GoldDerived(weightVori, purchasePricePerVori, currentPricePerVori decimal.Decimal) (currentValue, gainLoss decimal.Decimal) {
	currentValue = weightVori.Mul(currentPricePerVori)
	gainLoss = currentValue.Sub(weightVori.Mul(purchasePricePerVori))
	return currentValue, gainLoss
}

// AnnualRent extrapolates a monthly rent to a yearly figure
func AnnualRent(monthlyRent decimal.Decimal) decimal.Decimal {
	return monthlyRent.Mul(twelve)
}

// NisabThreshold computes the wealth threshold above which zakat applies,
// from either the gold or the silver standard.
func NisabThreshold(useGold bool, goldPricePerGram, silverPricePerGram decimal.Decimal) decimal.Decimal {
	if useGold {
		return GoldNisabGrams.Mul(goldPricePerGram)
	}
	return SilverNisabGrams.Mul(silverPricePerGram)
}
