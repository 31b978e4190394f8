package rules

import "fmt"

const (
	MaxEnergy  = 100
	MaxDustBag = 100

	DustScore   = 10 // score per collected dust
	DustVolume  = 10 // bag fill per collected dust
	DustDamage  = 10
	GhostDamage = 50
)

// HeartKind selects how much energy a heart restores.
type HeartKind int

const (
	HeartSmall HeartKind = iota
	HeartBig
)

// Restore returns the energy this heart gives back.
func (k HeartKind) Restore() int {
	if k == HeartBig {
		return 50
	}
	return 10
}

// Texture returns the image key for this heart.
func (k HeartKind) Texture() string {
	if k == HeartBig {
		return "heart_big"
	}
	return "heart_small"
}

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	}
	return "none"
}

// DustResult tells the caller which flourish to play after a dust overlap.
type DustResult int

const (
	DustIgnored DustResult = iota // round already over
	DustCollected
	DustBagFull
	DustDamaged
)

// State is the whole mutable world of one round.
type State struct {
	Score     int
	Energy    int
	DustBag   int
	Direction Direction
	GameOver  bool
	Outcome   Outcome
}

// NewState returns the state at the start of a round.
func NewState() State {
	return State{
		Energy:    MaxEnergy,
		Direction: Default,
	}
}

func (s *State) SetDirection(d Direction) {
	if s.GameOver {
		return
	}
	s.Direction = d
}

func (s *State) ResetDirection() {
	s.SetDirection(Default)
}

// DustOverlap applies the player touching a dust that entered from dustDir.
// Matching directions collect while the bag has room; anything else hurts.
func (s *State) DustOverlap(dustDir Direction) DustResult {
	if s.GameOver {
		return DustIgnored
	}
	if s.Direction != dustDir {
		s.drain(DustDamage)
		return DustDamaged
	}
	if s.DustBag >= MaxDustBag {
		return DustBagFull
	}
	s.Score += DustScore
	s.DustBag = min(s.DustBag+DustVolume, MaxDustBag)
	return DustCollected
}

// HeartPickup restores energy up to MaxEnergy and returns the amount gained.
func (s *State) HeartPickup(kind HeartKind) int {
	if s.GameOver {
		return 0
	}
	before := s.Energy
	s.Energy = min(s.Energy+kind.Restore(), MaxEnergy)
	return s.Energy - before
}

func (s *State) GhostHit() {
	if s.GameOver {
		return
	}
	s.drain(GhostDamage)
}

func (s *State) EmptyBag() {
	if s.GameOver {
		return
	}
	s.DustBag = 0
}

func (s *State) BagFull() bool {
	return s.DustBag >= MaxDustBag
}

func (s *State) drain(amount int) {
	s.Energy = max(s.Energy-amount, 0)
}

// CheckGameOver ends the round when energy is gone or the score reached winScore.
// Reaching winScore wins even if energy ran out on the same overlap.
// It reports the outcome only on the call that ended the round.
func (s *State) CheckGameOver(winScore int) Outcome {
	if s.GameOver {
		return OutcomeNone
	}
	switch {
	case s.Score >= winScore:
		s.Outcome = OutcomeWin
	case s.Energy <= 0:
		s.Outcome = OutcomeLoss
	default:
		return OutcomeNone
	}
	s.GameOver = true
	return s.Outcome
}

// Labels renders the three HUD lines.
func (s *State) Labels() (score, energy, bag string) {
	return fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Energy: %d", s.Energy),
		fmt.Sprintf("Bag: %d%%", min(s.DustBag, MaxDustBag))
}
