// Package pricing prices multiplier items and finds the largest purchase a budget covers.
package pricing

import "math"

// CostExponent shapes the per-level cost curve. Each unit bought at level x costs x^CostExponent.
const CostExponent = 1.3

// CostAndGain prices a batch of amount multiplier items bought on top of currentMultiplier.
//
// The cost is the sum of x^1.3 for every level x in [currentMultiplier, currentMultiplier+amount-1],
// scaled by itemPrice and floored. The gain is itemGain*amount.
// An amount of zero (or less) is an empty range and costs nothing. Costs past math.MaxInt saturate.
func CostAndGain(amount, currentMultiplier, itemPrice, itemGain int) (cost, gain int) {
	if amount <= 0 {
		return 0, 0
	}

	gain = saturatingMul(itemGain, amount)

	if itemPrice == 0 {
		return 0, gain
	}

	// The top level currentMultiplier+amount-1 does not fit in an int.
	if currentMultiplier > math.MaxInt-(amount-1) {
		return math.MaxInt, gain
	}

	price := float64(itemPrice)
	var sum float64
	for i := 0; i < amount; i++ {
		sum += math.Pow(float64(currentMultiplier+i), CostExponent)
		if sum*price >= math.MaxInt {
			return math.MaxInt, gain
		}
	}

	return floorToInt(sum * price), gain
}

// floorToInt floors v and clamps it into [0, math.MaxInt].
func floorToInt(v float64) int {
	v = math.Floor(v)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// saturatingMul multiplies two non-negative ints, clamping at math.MaxInt.
func saturatingMul(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
