package scenes

import (
	"github.com/yohamta/donburi"

	"RoomCrawler/assets"
	"RoomCrawler/engine"
	"RoomCrawler/game"
	"RoomCrawler/styles"
)

type PlayerOverlayRoot struct{}

// Hearts is the container of heart images; Shown is the life it displays
type Hearts struct {
	Shown int
}

var (
	PlayerOverlayRootComponent = donburi.NewComponentType[PlayerOverlayRoot]()
	HeartsComponent            = donburi.NewComponentType[Hearts]()
)

// PlayerOverlay shows the player's life as a row of hearts
type PlayerOverlay struct {
	Theme  Theme
	States *game.States
}

func (p PlayerOverlay) Build(a *engine.App) {
	s := p.States
	s.App.OnEnter(game.AppGame, func(a *engine.App) {
		styles.SpawnRoot(a.World, PlayerOverlayRootComponent, PlayerOverlayRoot{}, styles.Div(
			styles.Cn(styles.WFull, styles.HFull, styles.FlexCol, styles.ItemsEnd, styles.JustifyStart),
			styles.With(HeartsComponent, Hearts{Shown: -1},
				styles.Div(styles.Cn(styles.FlexRow, styles.Gap2, styles.P4))),
		))
	})
	s.App.OnExit(game.AppGame, despawn(PlayerOverlayRootComponent))
	a.AddSystem("player hearts", p.syncHearts, s.InGame())
}

// syncHearts re-renders the hearts whenever the player's life changes
func (p PlayerOverlay) syncHearts(a *engine.App) {
	w := a.World
	container, ok := HeartsComponent.First(w)
	if !ok {
		return
	}
	life := game.LifeComponent.Get(game.Player(w)).Hearts
	hearts := HeartsComponent.Get(container)
	if hearts.Shown == life {
		return
	}
	hearts.Shown = life

	e := container.Entity()
	engine.DespawnChildren(w, e)
	lib, _ := engine.GetResource[*assets.Library](a.Resources)
	b := styles.NewBuilder(w, e)
	for range max(life, 0) {
		styles.Render(b, styles.Img(p.Theme.Heart, lib.Texture(game.TextureHeart)))
	}
}
