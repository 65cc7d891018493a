package building

// expertBonus maps an expert headcount (0-5) to its production bonus.
// The gains diminish with each additional expert.
var expertBonus = [...]float64{0, 0.0306, 0.0696, 0.1248, 0.1974, 0.2840}

// MaxExpertsPerCategory is the allocation limit for one expertise.
const MaxExpertsPerCategory = 5

// ExpertBonus returns the production bonus for a number of experts of
// one expertise category. Amounts outside 0-5 are clamped.
func ExpertBonus(amount int) float64 {
	if amount <= 0 {
		return 0
	}
	if amount >= len(expertBonus) {
		return expertBonus[len(expertBonus)-1]
	}
	return expertBonus[amount]
}
