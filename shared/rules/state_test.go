package rules

import (
	"errors"
	"testing"
)

func TestDirectionVelocity(t *testing.T) {
	const speed = 200.0
	tests := []struct {
		dir    Direction
		wantVX float64
		wantVY float64
	}{
		{Default, 0, 0},
		{UpLeft, -speed, -speed},
		{UpRight, speed, -speed},
		{DownLeft, -speed, speed},
		{DownRight, speed, speed},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			v := tc.dir.Velocity(speed)
			if v.X != tc.wantVX || v.Y != tc.wantVY {
				t.Fatalf("%v.Velocity(%v) = (%v,%v), want (%v,%v)", tc.dir, speed, v.X, v.Y, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestDirectionNamesRoundTrip(t *testing.T) {
	for _, d := range []Direction{Default, UpLeft, UpRight, DownLeft, DownRight} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v; want %v", d.String(), got, err, d)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("ParseDirection(sideways) error = %v, want ErrUnknownDirection", err)
	}
}

func TestDirectionTexture(t *testing.T) {
	if got := Default.Texture(); got != "player" {
		t.Fatalf("Default.Texture() = %q, want player", got)
	}
	if got := DownRight.Texture(); got != "player_down_right" {
		t.Fatalf("DownRight.Texture() = %q, want player_down_right", got)
	}
}

func TestDustOverlapMatchingDirectionCollects(t *testing.T) {
	s := NewState()
	s.SetDirection(UpLeft)

	if got := s.DustOverlap(UpLeft); got != DustCollected {
		t.Fatalf("DustOverlap = %v, want DustCollected", got)
	}
	if s.Score != 10 || s.DustBag != 10 || s.Energy != MaxEnergy {
		t.Fatalf("state after collect = %+v, want score 10, bag 10, energy 100", s)
	}
}

func TestDustOverlapMismatchDamages(t *testing.T) {
	tests := []struct {
		name   string
		player Direction
		dust   Direction
	}{
		{"standing still", Default, UpRight},
		{"opposite corner", UpLeft, DownRight},
		{"same row", DownLeft, DownRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.SetDirection(tc.player)
			if got := s.DustOverlap(tc.dust); got != DustDamaged {
				t.Fatalf("DustOverlap = %v, want DustDamaged", got)
			}
			if s.Energy != MaxEnergy-DustDamage || s.Score != 0 || s.DustBag != 0 {
				t.Fatalf("state after damage = %+v", s)
			}
		})
	}
}

func TestDustBagNeverExceedsCapacity(t *testing.T) {
	s := NewState()
	s.SetDirection(DownLeft)
	for i := 0; i < 15; i++ {
		s.DustOverlap(DownLeft)
	}
	if s.DustBag != MaxDustBag {
		t.Fatalf("DustBag = %d, want %d", s.DustBag, MaxDustBag)
	}
	if s.Score != 100 {
		t.Fatalf("Score = %d, want 100: a full bag must stop scoring", s.Score)
	}
	if got := s.DustOverlap(DownLeft); got != DustBagFull {
		t.Fatalf("DustOverlap on full bag = %v, want DustBagFull", got)
	}
	if !s.BagFull() {
		t.Fatal("BagFull() = false, want true")
	}

	s.EmptyBag()
	if s.DustBag != 0 || s.BagFull() {
		t.Fatalf("after EmptyBag DustBag = %d", s.DustBag)
	}
	if got := s.DustOverlap(DownLeft); got != DustCollected || s.Score != 110 {
		t.Fatalf("collect after empty = %v, score %d", got, s.Score)
	}
}

func TestEnergyClampedUnderHearts(t *testing.T) {
	s := NewState()
	if gained := s.HeartPickup(HeartBig); gained != 0 || s.Energy != MaxEnergy {
		t.Fatalf("big heart at full energy gained %d, energy %d", gained, s.Energy)
	}

	s.Energy = 70
	if gained := s.HeartPickup(HeartBig); gained != 30 || s.Energy != MaxEnergy {
		t.Fatalf("big heart at 70 gained %d, energy %d; want 30, 100", gained, s.Energy)
	}

	s.Energy = 40
	for i := 0; i < 10; i++ {
		s.HeartPickup(HeartSmall)
		if s.Energy < 0 || s.Energy > MaxEnergy {
			t.Fatalf("energy %d out of range after pickup %d", s.Energy, i)
		}
	}
	if s.Energy != MaxEnergy {
		t.Fatalf("energy = %d, want %d", s.Energy, MaxEnergy)
	}
}

func TestEnergyNeverNegative(t *testing.T) {
	s := NewState()
	s.Energy = 30
	s.GhostHit()
	if s.Energy != 0 {
		t.Fatalf("energy after ghost at 30 = %d, want 0", s.Energy)
	}
	s.DustOverlap(UpLeft)
	if s.Energy != 0 {
		t.Fatalf("energy after dust at 0 = %d, want 0", s.Energy)
	}
}

func TestCheckGameOver(t *testing.T) {
	const win = 500
	tests := []struct {
		name   string
		score  int
		energy int
		want   Outcome
	}{
		{"playing", 490, 10, OutcomeNone},
		{"win at boundary", 500, 50, OutcomeWin},
		{"win above boundary", 510, 50, OutcomeWin},
		{"loss at zero", 100, 0, OutcomeLoss},
		{"win beats loss", 500, 0, OutcomeWin},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Score, s.Energy = tc.score, tc.energy
			if got := s.CheckGameOver(win); got != tc.want {
				t.Fatalf("CheckGameOver = %v, want %v", got, tc.want)
			}
			if s.GameOver != (tc.want != OutcomeNone) {
				t.Fatalf("GameOver = %v for outcome %v", s.GameOver, tc.want)
			}
		})
	}
}

func TestCheckGameOverFiresOnce(t *testing.T) {
	s := NewState()
	s.Energy = 0
	if got := s.CheckGameOver(200); got != OutcomeLoss {
		t.Fatalf("first CheckGameOver = %v, want loss", got)
	}
	s.Score = 1000
	if got := s.CheckGameOver(200); got != OutcomeNone {
		t.Fatalf("second CheckGameOver = %v, want none", got)
	}
	if s.Outcome != OutcomeLoss {
		t.Fatalf("Outcome changed to %v after game over", s.Outcome)
	}
}

func TestStateFrozenAfterGameOver(t *testing.T) {
	s := NewState()
	s.SetDirection(UpRight)
	s.Score = 200
	s.CheckGameOver(200)

	before := s
	s.SetDirection(DownLeft)
	s.DustOverlap(UpRight)
	s.HeartPickup(HeartBig)
	s.GhostHit()
	s.EmptyBag()
	if s != before {
		t.Fatalf("state changed after game over: %+v -> %+v", before, s)
	}
}

func TestLabels(t *testing.T) {
	s := NewState()
	s.Score, s.Energy, s.DustBag = 40, 70, 40
	score, energy, bag := s.Labels()
	if score != "Score: 40" || energy != "Energy: 70" || bag != "Bag: 40%" {
		t.Fatalf("Labels() = %q, %q, %q", score, energy, bag)
	}
}
