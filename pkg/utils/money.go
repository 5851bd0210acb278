package utils

// ApplyRateBps applies a basis-point rate to a whole-naira amount, rounding
// half up to the nearest naira. Half-up is the fixed rounding policy for every
// commission line: it never drifts against the beneficiary and keeps replayed
// computations byte-identical.
//
// amount and rateBps must be non-negative; callers validate configuration
// before money moves.
func ApplyRateBps(amount int64, rateBps int) int64 {
	if amount <= 0 || rateBps <= 0 {
		return 0
	}
	return (amount*int64(rateBps) + 5000) / 10000
}
