package scenes

import (
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"

	"RoomCrawler/engine"
	"RoomCrawler/game"
	"RoomCrawler/styles"
)

type (
	MainMenuRoot  struct{}
	PauseMenuRoot struct{}

	// Button actions; each is the component a menu button is tagged with
	StartButton struct{}
	BackButton  struct{}
	QuitButton  struct{}
)

var (
	MainMenuRootComponent  = donburi.NewComponentType[MainMenuRoot]()
	PauseMenuRootComponent = donburi.NewComponentType[PauseMenuRoot]()

	StartButtonComponent = donburi.NewComponentType[StartButton]()
	BackButtonComponent  = donburi.NewComponentType[BackButton]()
	QuitButtonComponent  = donburi.NewComponentType[QuitButton]()
)

// MenuButton is a themed button with a label, tagged with an action
type MenuButton[T any] struct {
	Theme     Theme
	Label     string
	Component *donburi.ComponentType[T]
	Action    T
}

func (m MenuButton[T]) Render(b *styles.Builder, slot styles.Element) donburi.Entity {
	return styles.RenderAs(b, m.Component, m.Action, styles.Button(
		m.Theme.MenuButton,
		styles.Text(m.Theme.MenuLabel, m.Label),
		slot,
	))
}

// menu centers a column of buttons on the screen
func menu(buttons ...styles.Element) styles.Element {
	return styles.Div(
		styles.Cn(styles.HFull, styles.WFull, styles.Flex, styles.JustifyCenter, styles.ItemsCenter),
		styles.Div(styles.Cn(styles.Flex, styles.FlexCol, styles.Gap2), buttons...),
	)
}

func despawn[T any](marker *donburi.ComponentType[T]) engine.System {
	return func(a *engine.App) {
		engine.DespawnWith(a.World, marker)
	}
}

func quit(a *engine.App, _ *donburi.Entry, _ styles.Interaction) {
	log.Info().Msg("quit clicked")
	engine.AppExit.Publish(a.World, engine.AppExitEvent{})
}

// MainMenu is the splash screen: start a game or quit
type MainMenu struct {
	Theme  Theme
	States *game.States
}

func (m MainMenu) Build(a *engine.App) {
	s := m.States
	s.App.OnEnter(game.AppSplash, func(a *engine.App) {
		styles.SpawnRoot(a.World, MainMenuRootComponent, MainMenuRoot{}, menu(
			styles.El(MenuButton[StartButton]{Theme: m.Theme, Label: "Start game", Component: StartButtonComponent}),
			styles.El(MenuButton[QuitButton]{Theme: m.Theme, Label: "Quit", Component: QuitButtonComponent}),
		))
	})
	s.App.OnExit(game.AppSplash, despawn(MainMenuRootComponent))

	inMenu := engine.InState(s.App, game.AppSplash)
	a.AddSystem("main menu start", styles.OnClick(StartButtonComponent, func(*engine.App, *donburi.Entry, styles.Interaction) {
		s.App.Set(game.AppSetupGame)
	}), inMenu)
	a.AddSystem("main menu quit", styles.OnClick(QuitButtonComponent, quit), inMenu)
}

// PauseMenu is shown over the paused game
type PauseMenu struct {
	Theme  Theme
	States *game.States
}

func (m PauseMenu) Build(a *engine.App) {
	s := m.States
	s.Game.OnEnter(game.GamePaused, func(a *engine.App) {
		styles.SpawnRoot(a.World, PauseMenuRootComponent, PauseMenuRoot{}, menu(
			styles.El(MenuButton[BackButton]{Theme: m.Theme, Label: "Go back to game", Component: BackButtonComponent}),
			styles.El(MenuButton[QuitButton]{Theme: m.Theme, Label: "Quit", Component: QuitButtonComponent}),
		))
	})
	s.Game.OnExit(game.GamePaused, despawn(PauseMenuRootComponent))

	a.AddSystem("pause menu back", styles.OnClick(BackButtonComponent, func(*engine.App, *donburi.Entry, styles.Interaction) {
		s.Game.Set(game.GameRunning)
	}), s.Paused())
	a.AddSystem("pause menu quit", styles.OnClick(QuitButtonComponent, quit), s.Paused())
}
