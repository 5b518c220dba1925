package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

type phase int

const (
	phaseMenu phase = iota
	phasePlay
)

func TestTickOrder(t *testing.T) {
	a := NewApp(320, 240)
	var trace []string
	st := AddState(a, "phase", phaseMenu)
	st.OnEnter(phaseMenu, func(*App) { trace = append(trace, "enter menu") })
	st.OnExit(phaseMenu, func(*App) { trace = append(trace, "exit menu") })
	st.OnEnter(phasePlay, func(*App) { trace = append(trace, "enter play") })

	a.AddStartupSystem("boot", func(*App) { trace = append(trace, "startup") })
	a.AddSystemTo(StageLast, "last", func(*App) { trace = append(trace, "last") })
	a.AddSystem("update", func(*App) { trace = append(trace, "update") })
	a.AddSystemTo(StageFirst, "first", func(*App) { trace = append(trace, "first") })
	a.AddSystem("play only", func(*App) { trace = append(trace, "playing") }, InState(st, phasePlay))

	a.Tick(0.016)
	want := []string{"startup", "enter menu", "first", "update", "last"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("first frame mismatch (-want +got):\n%s", diff)
	}

	trace = nil
	st.Set(phasePlay)
	if st.Current() != phaseMenu {
		t.Errorf("Expected transition to be deferred, got %v", st.Current())
	}
	a.Tick(0.016)
	want = []string{"exit menu", "enter play", "first", "update", "playing", "last"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("transition frame mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSameStateIsNoop(t *testing.T) {
	a := NewApp(320, 240)
	entered := 0
	st := AddState(a, "phase", phaseMenu)
	st.OnEnter(phaseMenu, func(*App) { entered++ })
	a.Tick(0)
	st.Set(phaseMenu)
	a.Tick(0)
	if entered != 1 {
		t.Errorf("Expected one enter, got %d", entered)
	}
	if _, ok := st.Pending(); ok {
		t.Error("Expected no pending state after tick")
	}
}

func TestConditions(t *testing.T) {
	a := NewApp(320, 240)
	in := MustGetResource[*Input](a.Resources)
	runs := 0
	a.AddSystem("f1", func(*App) { runs++ }, KeyJustPressed(ebiten.KeyF1), Not(KeyPressed(ebiten.KeyShift)))

	a.Tick(0)
	in.SetKeys(nil, []ebiten.Key{ebiten.KeyF1})
	a.Tick(0)
	in.SetKeys([]ebiten.Key{ebiten.KeyShift}, []ebiten.Key{ebiten.KeyF1})
	a.Tick(0)

	if runs != 1 {
		t.Errorf("Expected 1 run, got %d", runs)
	}
}

func TestAppExitEvent(t *testing.T) {
	a := NewApp(320, 240)
	a.AddSystem("quit", func(a *App) { AppExit.Publish(a.World, AppExitEvent{}) })
	if a.Exiting() {
		t.Fatal("Expected app not exiting before tick")
	}
	a.Tick(0)
	if !a.Exiting() {
		t.Error("Expected exit after published event was processed")
	}
}

func TestTimeAdvances(t *testing.T) {
	a := NewApp(320, 240)
	a.Tick(0.5)
	a.Tick(0.25)
	tm := MustGetResource[*Time](a.Resources)
	if tm.Frame != 2 || tm.Delta != 0.25 || tm.Elapsed != 0.75 {
		t.Errorf("Expected frame 2 delta 0.25 elapsed 0.75, got %+v", *tm)
	}
}

func TestLayoutReturnsViewport(t *testing.T) {
	a := NewApp(800, 600)
	w, h := a.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600, got %dx%d", w, h)
	}
}

func TestInputAxis(t *testing.T) {
	in := NewInput()
	left := []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}
	right := []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}

	in.SetKeys([]ebiten.Key{ebiten.KeyLeft}, nil)
	if got := in.Axis(left, right); got != -1 {
		t.Errorf("Expected -1, got %v", got)
	}
	in.SetKeys([]ebiten.Key{ebiten.KeyA, ebiten.KeyD}, nil)
	if got := in.Axis(left, right); got != 0 {
		t.Errorf("Expected opposing keys to cancel, got %v", got)
	}
}
