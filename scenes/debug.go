package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"RoomCrawler/engine"
	"RoomCrawler/game"
	"RoomCrawler/styles"
)

type DebugOverlayRoot struct{}

// DebugList is the text node listing the debug log
type DebugList struct{}

var (
	DebugOverlayRootComponent = donburi.NewComponentType[DebugOverlayRoot]()
	DebugListComponent        = donburi.NewComponentType[DebugList]()
)

const (
	DebugHeader = "DEBUG\n"
	debugLayer  = 1
)

var (
	KeysDebugToggle = []ebiten.Key{ebiten.KeyF1}
	KeysDebugClear  = []ebiten.Key{ebiten.KeyF2}
	keysControl     = []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight}
	keysZoomOut     = []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
	keysZoomIn      = []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
)

// DebugOverlay lists the debug log over everything else. It lives for the
// whole run and is only hidden or shown.
type DebugOverlay struct {
	Theme  Theme
	States *game.States
}

func (d DebugOverlay) Build(a *engine.App) {
	s := d.States
	a.AddStartupSystem("spawn debug overlay", func(a *engine.App) {
		root := styles.SpawnRoot(a.World, DebugOverlayRootComponent, DebugOverlayRoot{}, styles.Div(
			styles.Cn(styles.WFull, styles.HFull, styles.FlexCol, styles.ItemsStart, styles.P2),
			styles.With(DebugListComponent, DebugList{}, styles.Text(d.Theme.DebugText, DebugHeader)),
		))
		styles.RootComponent.Get(a.World.Entry(root)).Layer = debugLayer
	})
	s.Debug.OnEnter(game.DebugVisible, setOverlayVisibility(styles.VisibilityInherited))
	s.Debug.OnEnter(game.DebugHidden, setOverlayVisibility(styles.VisibilityHidden))

	visible := engine.InState(s.Debug, game.DebugVisible)
	a.AddSystem("debug toggle", func(*engine.App) {
		if s.Debug.Current() == game.DebugVisible {
			s.Debug.Set(game.DebugHidden)
		} else {
			s.Debug.Set(game.DebugVisible)
		}
	}, engine.KeyJustPressed(KeysDebugToggle...))
	a.AddSystem("debug clear", func(a *engine.App) {
		engine.MustGetResource[*engine.DebugLog](a.Resources).Clear()
	}, engine.KeyJustPressed(KeysDebugClear...))
	a.AddSystem("debug zoom out", zoomDebugText(-1), visible,
		engine.KeyPressed(keysControl...), engine.KeyJustPressed(keysZoomOut...))
	a.AddSystem("debug zoom in", zoomDebugText(1), visible,
		engine.KeyPressed(keysControl...), engine.KeyJustPressed(keysZoomIn...))
	a.AddSystem("debug fps", LogFPS, visible)
	a.AddSystem("debug list", WriteDebugList, visible)
}

func setOverlayVisibility(v styles.Visibility) engine.System {
	return func(a *engine.App) {
		DebugOverlayRootComponent.Each(a.World, func(entry *donburi.Entry) {
			styles.VisibilityComponent.SetValue(entry, v)
		})
	}
}

// zoomDebugText changes the list font size by delta pixels in every
// interaction snapshot, so hovering keeps the zoom
func zoomDebugText(delta float64) engine.System {
	return func(a *engine.App) {
		DebugListComponent.Each(a.World, func(entry *donburi.Entry) {
			snaps := styles.InteractionTextStyleComponent.Get(entry)
			for _, st := range []*styles.TextStyle{&snaps.None, &snaps.Hover, &snaps.Pressed} {
				st.FontSize = max(st.FontSize+delta, 1)
			}
		})
	}
}

func LogFPS(a *engine.App) {
	engine.MustGetResource[*engine.DebugLog](a.Resources).Log("FPS", fmt.Sprintf("%.1f", ebiten.ActualFPS()))
}

// WriteDebugList rewrites the list text from the debug log
func WriteDebugList(a *engine.App) {
	lines := engine.MustGetResource[*engine.DebugLog](a.Resources).Lines()
	DebugListComponent.Each(a.World, func(entry *donburi.Entry) {
		style := styles.InteractionTextStyleComponent.Get(entry).For(styles.InteractionComponent.Get(entry).Current)
		sections := make([]styles.TextSection, 0, len(lines)+1)
		sections = append(sections, styles.TextSection{Value: DebugHeader, Style: style})
		for _, l := range lines {
			var sb strings.Builder
			sb.WriteString(l.Key)
			sb.WriteString(": ")
			sb.WriteString(l.Value)
			sb.WriteByte('\n')
			sections = append(sections, styles.TextSection{Value: sb.String(), Style: style})
		}
		styles.TextComponent.SetValue(entry, styles.TextBlock{Sections: sections})
	})
}
