package game

import (
	"fmt"

	"RoomCrawler/engine"
)

type AppState uint8

const (
	AppSplash AppState = iota
	AppSetupGame
	AppGame
)

func (s AppState) String() string {
	switch s {
	case AppSplash:
		return "splash"
	case AppSetupGame:
		return "setup"
	case AppGame:
		return "game"
	}
	return fmt.Sprintf("AppState(%d)", uint8(s))
}

type GameState uint8

const (
	GameRunning GameState = iota
	GamePaused
)

func (s GameState) String() string {
	if s == GamePaused {
		return "paused"
	}
	return "running"
}

type DebugState uint8

const (
	DebugHidden DebugState = iota
	DebugVisible
)

func (s DebugState) String() string {
	if s == DebugVisible {
		return "visible"
	}
	return "hidden"
}

// States are the three state machines driving the screens
type States struct {
	App   *engine.States[AppState]
	Game  *engine.States[GameState]
	Debug *engine.States[DebugState]
}

func AddStates(a *engine.App) *States {
	return &States{
		App:   engine.AddState(a, "app", AppSplash),
		Game:  engine.AddState(a, "game", GameRunning),
		Debug: engine.AddState(a, "debug", DebugHidden),
	}
}

// InGame holds while a game is loaded, paused or not
func (s *States) InGame() engine.Condition {
	return engine.InState(s.App, AppGame)
}

// Playing holds while the game runs unpaused
func (s *States) Playing() engine.Condition {
	return engine.All(engine.InState(s.App, AppGame), engine.InState(s.Game, GameRunning))
}

// Paused holds while the pause menu is up
func (s *States) Paused() engine.Condition {
	return engine.All(engine.InState(s.App, AppGame), engine.InState(s.Game, GamePaused))
}
