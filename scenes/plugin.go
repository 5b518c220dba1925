package scenes

import (
	"RoomCrawler/engine"
	"RoomCrawler/game"
)

// Plugin adds every screen. The debug overlay is optional.
type Plugin struct {
	Theme  Theme
	States *game.States
	Debug  bool
}

func (p Plugin) Build(a *engine.App) {
	a.AddPlugins(
		MainMenu{Theme: p.Theme, States: p.States},
		PauseMenu{Theme: p.Theme, States: p.States},
		PlayerOverlay{Theme: p.Theme, States: p.States},
	)
	if p.Debug {
		a.AddPlugins(DebugOverlay{Theme: p.Theme, States: p.States})
	}
}
