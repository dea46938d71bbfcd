package models

import "math"

// BaseUnitsPerCoin is the number of indivisible base units in one coin.
// All stakes, pots and balances are held in base units.
const BaseUnitsPerCoin uint64 = 1_000_000_000

// CoinsToBase converts a coin amount to base units, rounding to the
// nearest unit
func CoinsToBase(coins float64) uint64 {
	if coins <= 0 {
		return 0
	}
	return uint64(math.Round(coins * float64(BaseUnitsPerCoin)))
}

// BaseToCoins converts base units to a coin amount for display
func BaseToCoins(units uint64) float64 {
	return float64(units) / float64(BaseUnitsPerCoin)
}
