package components

import "github.com/yohamta/donburi"

// SpawnKind names what a spawn timer creates.
type SpawnKind int

const (
	SpawnDust SpawnKind = iota
	SpawnHeart
	SpawnGhost
)

// SpawnTimerData fires every Interval frames.
type SpawnTimerData struct {
	Kind     SpawnKind
	Interval int
	Elapsed  int
}

var SpawnTimer = donburi.NewComponentType[SpawnTimerData]()
