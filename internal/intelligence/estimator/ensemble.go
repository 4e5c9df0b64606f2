package estimator

import "math"

// Fallback estimate when every provider abstains: one Pomodoro.
const (
	FallbackMinutes    = 25
	FallbackConfidence = 0.3

	// MaxConfidence caps the blended confidence so the ensemble never
	// claims certainty.
	MaxConfidence = 0.95
)

// Estimate is the combined ensemble output.
type Estimate struct {
	Minutes    int
	Confidence float64
	Methods    []string // contributing provider methods, in vote order
}

// Combine blends votes into one estimate using a confidence-weighted mean.
// Votes with non-positive minutes are discarded as contract violations.
// An unreliable provider contributes near-zero weight without destabilizing
// the result; when nothing usable remains the fixed fallback is returned,
// so Combine always yields a deterministic answer.
func Combine(votes []Vote) Estimate {
	var (
		weighted float64
		total    float64
		methods  []string
		count    int
	)

	for _, v := range votes {
		if v.Minutes <= 0 {
			continue
		}
		weighted += v.Minutes * v.Confidence
		total += v.Confidence
		methods = append(methods, v.Method)
		count++
	}

	if count == 0 || total == 0 {
		return Estimate{
			Minutes:    FallbackMinutes,
			Confidence: FallbackConfidence,
			Methods:    []string{"fallback"},
		}
	}

	return Estimate{
		Minutes:    int(math.Round(weighted / total)),
		Confidence: math.Min(total/float64(count), MaxConfidence),
		Methods:    methods,
	}
}
