package catalog

// benchmarkTargets maps each difficulty to the score a well-calibrated
// challenge should average. Harder tiers are expected to score lower;
// the calibration engine corrects challenges that drift from the target.
var benchmarkTargets = map[Difficulty]float64{
	DifficultyBeginner:     72,
	DifficultyIntermediate: 68,
	DifficultyAdvanced:     64,
	DifficultyExpert:       60,
}

// BenchmarkTarget returns the expected average score for a difficulty.
func BenchmarkTarget(d Difficulty) float64 {
	if t, ok := benchmarkTargets[d]; ok {
		return t
	}
	return benchmarkTargets[DifficultyBeginner]
}
