package entity

// Loading progress bounds.
const (
	ProgressMin = 0.0
	ProgressMax = 1.0
	// ProgressStart is shown as soon as a load begins so the bar is visible.
	ProgressStart = 0.1
)

// LoadingProgress is the fraction of the current page load, always within
// [ProgressMin, ProgressMax].
type LoadingProgress float64

// NewLoadingProgress creates a progress value, clamping to the valid range.
func NewLoadingProgress(value float64) LoadingProgress {
	return LoadingProgress(clampProgress(value))
}

// Float64 returns the raw fraction.
func (p LoadingProgress) Float64() float64 {
	return float64(p)
}

// Percentage returns the progress as a percentage (e.g., 45 for 0.45).
func (p LoadingProgress) Percentage() int {
	return int(float64(p)*100 + 0.5)
}

// IsComplete returns true once the load reached the end.
func (p LoadingProgress) IsComplete() bool {
	return float64(p) >= ProgressMax
}

func clampProgress(v float64) float64 {
	// NaN compares false everywhere; treat it as no progress
	if v != v || v < ProgressMin {
		return ProgressMin
	}
	if v > ProgressMax {
		return ProgressMax
	}
	return v
}
