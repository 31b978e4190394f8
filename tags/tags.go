package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Dust       = donburi.NewTag().SetName("Dust")
	Heart      = donburi.NewTag().SetName("Heart")
	Ghost      = donburi.NewTag().SetName("Ghost")
	Bag        = donburi.NewTag().SetName("Bag")
	Button     = donburi.NewTag().SetName("Button")
	Background = donburi.NewTag().SetName("Background")
)

// Resolv tags for overlap queries
const (
	ResolvPlayer = "Player"
	ResolvDust   = "Dust"
	ResolvHeart  = "Heart"
	ResolvGhost  = "Ghost"
)
