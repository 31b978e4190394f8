package systems

import "testing"

func TestRecordScoreKeepsTheBest(t *testing.T) {
	const ruleset = "record-score-test"

	tests := []struct {
		score    int
		wantBest int
		wantNew  bool
	}{
		{120, 120, true},
		{80, 120, false},
		{120, 120, false},
		{300, 300, true},
	}
	for _, tc := range tests {
		best, newBest := RecordScore(ruleset, tc.score)
		if best != tc.wantBest || newBest != tc.wantNew {
			t.Fatalf("RecordScore(%d) = %d, %v; want %d, %v", tc.score, best, newBest, tc.wantBest, tc.wantNew)
		}
	}
	if got := BestScore(ruleset); got != 300 {
		t.Fatalf("BestScore = %d, want 300", got)
	}

	scores := BestScores()
	scores[ruleset] = 0
	if BestScore(ruleset) != 300 {
		t.Fatal("BestScores returned the live map")
	}
}
