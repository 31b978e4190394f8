package rules

import "time"

// DifficultyLevel is one step of the difficulty curve.
type DifficultyLevel struct {
	Threshold  int
	EnemySpeed float64
	GhostSpeed float64
	GhostDelay time.Duration
}

// DifficultyCurve hands out each level once, the first time the score reaches it.
type DifficultyCurve struct {
	levels  []DifficultyLevel
	applied map[int]bool
}

func NewDifficultyCurve(levels []DifficultyLevel) *DifficultyCurve {
	return &DifficultyCurve{
		levels:  levels,
		applied: make(map[int]bool, len(levels)),
	}
}

// Next returns the first level in table order that the score has reached and that
// has not been applied yet. At most one level is returned per call.
func (c *DifficultyCurve) Next(score int) (DifficultyLevel, bool) {
	for _, level := range c.levels {
		if score >= level.Threshold && !c.applied[level.Threshold] {
			c.applied[level.Threshold] = true
			return level, true
		}
	}
	return DifficultyLevel{}, false
}

// Applied reports how many levels have been handed out.
func (c *DifficultyCurve) Applied() int {
	return len(c.applied)
}

// BackgroundLevel names the background shown once the score reaches Threshold.
type BackgroundLevel struct {
	Threshold int
	Key       string
}

// BackgroundTrack only ever moves forward to a higher threshold.
type BackgroundTrack struct {
	levels  []BackgroundLevel
	applied map[int]bool
	current int
}

func NewBackgroundTrack(levels []BackgroundLevel) *BackgroundTrack {
	return &BackgroundTrack{
		levels:  levels,
		applied: make(map[int]bool, len(levels)),
	}
}

// Next returns the background to switch to, if any.
func (t *BackgroundTrack) Next(score int) (BackgroundLevel, bool) {
	for _, level := range t.levels {
		if score < level.Threshold || t.applied[level.Threshold] {
			continue
		}
		if level.Threshold <= t.current {
			return BackgroundLevel{}, false
		}
		t.current = level.Threshold
		t.applied[level.Threshold] = true
		return level, true
	}
	return BackgroundLevel{}, false
}

// Current returns the threshold of the background last switched to (0 for the initial one).
func (t *BackgroundTrack) Current() int {
	return t.current
}
