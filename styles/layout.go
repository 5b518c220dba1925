package styles

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"RoomCrawler/engine"
)

// LineHeight is the line box height as a multiple of the font size
const LineHeight = 1.2

// UiStack is the paint order of laid out nodes, back to front. Hit testing
// walks it front to back.
type UiStack struct {
	Entities []donburi.Entity
}

// UiFont is the face used by text sections without a font of their own
type UiFont struct {
	Source *text.GoTextFaceSource
}

var rootQuery = donburi.NewQuery(filter.Contains(RootComponent, NodeComponent, StyleComponent))

type layouter struct {
	world donburi.World
	font  *text.GoTextFaceSource
	stack []donburi.Entity
}

// ComputeLayout sizes and positions every UI tree against the viewport and
// rebuilds the paint order
func ComputeLayout(a *engine.App) {
	vp := engine.MustGetResource[*engine.Viewport](a.Resources)
	stack := engine.MustGetResource[*UiStack](a.Resources)
	var font *text.GoTextFaceSource
	if f, ok := engine.GetResource[*UiFont](a.Resources); ok {
		font = f.Source
	}
	stack.Entities = LayoutRoots(a.World, float64(vp.Width), float64(vp.Height), font, stack.Entities[:0])
}

// LayoutRoots lays out all roots in order and appends the paint order to dst
func LayoutRoots(w donburi.World, width, height float64, font *text.GoTextFaceSource, dst []donburi.Entity) []donburi.Entity {
	type root struct {
		e donburi.Entity
		Root
	}
	var roots []root
	rootQuery.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(engine.ParentComponent) {
			return
		}
		roots = append(roots, root{entry.Entity(), *RootComponent.Get(entry)})
	})
	slices.SortFunc(roots, func(a, b root) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})

	l := &layouter{world: w, font: font, stack: dst}
	for _, r := range roots {
		style := l.style(r.e)
		mw, mh := l.measure(r.e)
		rw, ok := style.Width.Resolve(width)
		if !ok {
			rw = mw
		}
		rh, ok := style.Height.Resolve(height)
		if !ok {
			rh = mh
		}
		l.place(r.e, style.Margin.Left, style.Margin.Top, rw, rh, true)
	}
	return l.stack
}

func (l *layouter) style(e donburi.Entity) Style {
	entry := l.world.Entry(e)
	if !entry.HasComponent(StyleComponent) {
		return Style{}
	}
	return *StyleComponent.Get(entry)
}

func (l *layouter) children(e donburi.Entity) []donburi.Entity {
	kids := engine.ChildrenOf(l.world, e)
	return slices.DeleteFunc(kids, func(c donburi.Entity) bool {
		if !l.world.Valid(c) {
			return true
		}
		entry := l.world.Entry(c)
		if !entry.HasComponent(NodeComponent) {
			return true
		}
		return l.style(c).Display == DisplayNone
	})
}

// measure returns the intrinsic border box size of e
func (l *layouter) measure(e donburi.Entity) (float64, float64) {
	s := l.style(e)
	if s.Display == DisplayNone {
		return 0, 0
	}
	entry := l.world.Entry(e)

	var cw, ch float64
	switch {
	case entry.HasComponent(TextComponent):
		cw, ch = l.measureText(*TextComponent.Get(entry))
	case entry.HasComponent(ImageComponent):
		if tex := ImageComponent.Get(entry).Texture; tex != nil {
			b := tex.Bounds()
			cw, ch = float64(b.Dx()), float64(b.Dy())
		}
	}

	kids := l.children(e)
	row := s.FlexDirection == FlexDirectionRow
	for i, c := range kids {
		w, h := l.outer(c)
		if row {
			cw += w
			ch = max(ch, h)
		} else {
			ch += h
			cw = max(cw, w)
		}
		if i > 0 {
			if row {
				cw += s.Gap
			} else {
				ch += s.Gap
			}
		}
	}

	w := cw + s.Padding.Width()
	h := ch + s.Padding.Height()
	if s.Width.Unit == UnitPx {
		w = s.Width.Value
	}
	if s.Height.Unit == UnitPx {
		h = s.Height.Value
	}
	return w, h
}

// outer is the intrinsic size including margins
func (l *layouter) outer(e donburi.Entity) (float64, float64) {
	w, h := l.measure(e)
	m := l.style(e).Margin
	return w + m.Width(), h + m.Height()
}

func (l *layouter) measureText(t TextBlock) (float64, float64) {
	var width, height, lineW, lineH float64
	flush := func() {
		width = max(width, lineW)
		height += lineH
		lineW, lineH = 0, 0
	}
	for _, sec := range t.Sections {
		for i, part := range splitLines(sec.Value) {
			if i > 0 {
				flush()
			}
			lineH = max(lineH, sec.Style.FontSize*LineHeight)
			lineW += l.advance(part, sec.Style)
		}
	}
	if lineW > 0 || lineH > 0 {
		flush()
	}
	return width, height
}

func (l *layouter) advance(s string, st TextStyle) float64 {
	return Advance(s, st, l.font)
}

// Advance is the width of a single line of s; without any font it assumes
// half an em per rune
func Advance(s string, st TextStyle, fallback *text.GoTextFaceSource) float64 {
	src := st.Font
	if src == nil {
		src = fallback
	}
	if src == nil {
		return float64(utf8.RuneCountInString(s)) * st.FontSize / 2
	}
	w, _ := text.Measure(s, &text.GoTextFace{Source: src, Size: st.FontSize}, 0)
	return w
}

// splitLines splits on newlines; a trailing newline yields an empty last line
func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

func (l *layouter) visible(e donburi.Entity, parentVisible bool) bool {
	entry := l.world.Entry(e)
	if !entry.HasComponent(VisibilityComponent) {
		return parentVisible
	}
	switch *VisibilityComponent.Get(entry) {
	case VisibilityHidden:
		return false
	case VisibilityVisible:
		return true
	}
	return parentVisible
}

// place assigns the border box of e and lays out its children
func (l *layouter) place(e donburi.Entity, x, y, w, h float64, parentVisible bool) {
	vis := l.visible(e, parentVisible)
	entry := l.world.Entry(e)
	NodeComponent.SetValue(entry, ComputedNode{X: x, Y: y, Width: w, Height: h, Visible: vis})
	l.stack = append(l.stack, e)

	s := l.style(e)
	kids := l.children(e)
	if len(kids) == 0 {
		return
	}

	innerX, innerY := x+s.Padding.Left, y+s.Padding.Top
	innerW := max(0, w-s.Padding.Width())
	innerH := max(0, h-s.Padding.Height())
	row := s.FlexDirection == FlexDirectionRow
	mainSize, crossSize := innerW, innerH
	if !row {
		mainSize, crossSize = innerH, innerW
	}

	type item struct {
		e                       donburi.Entity
		main, cross             float64
		mainBefore, mainAfter   float64
		crossBefore, crossAfter float64
		grow                    float64
		autoCross               bool
	}
	items := make([]item, len(kids))
	used := s.Gap * float64(len(kids)-1)
	totalGrow := 0.0
	for i, c := range kids {
		cs := l.style(c)
		mw, mh := l.measure(c)
		it := item{e: c, grow: cs.FlexGrow}
		mainVal, crossVal := cs.Width, cs.Height
		mainMeasured, crossMeasured := mw, mh
		it.mainBefore, it.mainAfter = cs.Margin.Left, cs.Margin.Right
		it.crossBefore, it.crossAfter = cs.Margin.Top, cs.Margin.Bottom
		if !row {
			mainVal, crossVal = cs.Height, cs.Width
			mainMeasured, crossMeasured = mh, mw
			it.mainBefore, it.mainAfter = cs.Margin.Top, cs.Margin.Bottom
			it.crossBefore, it.crossAfter = cs.Margin.Left, cs.Margin.Right
		}
		if v, ok := mainVal.Resolve(mainSize); ok {
			it.main = v
		} else {
			it.main = mainMeasured
		}
		if v, ok := crossVal.Resolve(crossSize); ok {
			it.cross = v
		} else {
			it.cross = crossMeasured
			it.autoCross = true
		}
		used += it.main + it.mainBefore + it.mainAfter
		totalGrow += it.grow
		items[i] = it
	}

	free := mainSize - used
	if free > 0 && totalGrow > 0 {
		for i := range items {
			items[i].main += free * items[i].grow / totalGrow
		}
		free = 0
	}

	offset, spacing := justify(s.JustifyContent, free, len(items))
	cursor := offset
	for _, it := range items {
		cross := it.cross
		room := crossSize - it.crossBefore - it.crossAfter
		var crossPos float64
		switch s.AlignItems {
		case AlignItemsStretch:
			if it.autoCross {
				cross = max(0, room)
			}
		case AlignItemsCenter:
			crossPos = (room - cross) / 2
		case AlignItemsEnd:
			crossPos = room - cross
		}
		crossPos += it.crossBefore
		mainPos := cursor + it.mainBefore

		if row {
			l.place(it.e, innerX+mainPos, innerY+crossPos, it.main, cross, vis)
		} else {
			l.place(it.e, innerX+crossPos, innerY+mainPos, cross, it.main, vis)
		}
		cursor = mainPos + it.main + it.mainAfter + s.Gap + spacing
	}
}

// justify returns the leading offset and the extra spacing between items
func justify(j JustifyContent, free float64, n int) (float64, float64) {
	switch j {
	case JustifyContentCenter:
		return free / 2, 0
	case JustifyContentEnd:
		return free, 0
	}
	if free <= 0 {
		return 0, 0
	}
	switch j {
	case JustifyContentSpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
	case JustifyContentSpaceAround:
		return free / float64(n) / 2, free / float64(n)
	case JustifyContentSpaceEvenly:
		return free / float64(n+1), free / float64(n+1)
	}
	return 0, 0
}
