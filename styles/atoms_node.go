package styles

import "image/color"

// Display
var (
	Flex   = node(func(b *NodeBundle) { b.Style.Display = DisplayFlex })
	Hidden = node(func(b *NodeBundle) { b.Style.Display = DisplayNone })
)

// Flex direction and growth
var (
	FlexRow = node(func(b *NodeBundle) { b.Style.FlexDirection = FlexDirectionRow })
	FlexCol = node(func(b *NodeBundle) { b.Style.FlexDirection = FlexDirectionColumn })
	Grow    = node(func(b *NodeBundle) { b.Style.FlexGrow = 1 })
	Grow0   = node(func(b *NodeBundle) { b.Style.FlexGrow = 0 })
)

// Sizing uses the 4px spacing scale: W16 is 64px
var (
	W0    = width(Px(0))
	W1    = width(Px(4))
	W2    = width(Px(8))
	W4    = width(Px(16))
	W8    = width(Px(32))
	W12   = width(Px(48))
	W16   = width(Px(64))
	W20   = width(Px(80))
	W24   = width(Px(96))
	W32   = width(Px(128))
	W40   = width(Px(160))
	W48   = width(Px(192))
	W64   = width(Px(256))
	W80   = width(Px(320))
	W96   = width(Px(384))
	WHalf = width(Percent(50))
	WFull = width(Percent(100))
	WAuto = width(Auto)

	H0    = height(Px(0))
	H1    = height(Px(4))
	H2    = height(Px(8))
	H4    = height(Px(16))
	H8    = height(Px(32))
	H12   = height(Px(48))
	H16   = height(Px(64))
	H20   = height(Px(80))
	H24   = height(Px(96))
	H32   = height(Px(128))
	H40   = height(Px(160))
	H48   = height(Px(192))
	H64   = height(Px(256))
	H80   = height(Px(320))
	H96   = height(Px(384))
	HHalf = height(Percent(50))
	HFull = height(Percent(100))
	HAuto = height(Auto)
)

func width(v Val) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Width = v })
}

func height(v Val) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Height = v })
}

// Padding, margin and gap
var (
	P0  = padding(All(0))
	P1  = padding(All(4))
	P2  = padding(All(8))
	P3  = padding(All(12))
	P4  = padding(All(16))
	P6  = padding(All(24))
	P8  = padding(All(32))
	P12 = padding(All(48))
	P16 = padding(All(64))
	Px1 = paddingX(4)
	Px2 = paddingX(8)
	Px4 = paddingX(16)
	Px8 = paddingX(32)
	Py1 = paddingY(4)
	Py2 = paddingY(8)
	Py4 = paddingY(16)
	Py8 = paddingY(32)

	M0  = margin(All(0))
	M1  = margin(All(4))
	M2  = margin(All(8))
	M4  = margin(All(16))
	M8  = margin(All(32))
	Mx2 = marginX(8)
	Mx4 = marginX(16)
	My2 = marginY(8)
	My4 = marginY(16)

	Gap0 = gap(0)
	Gap1 = gap(4)
	Gap2 = gap(8)
	Gap4 = gap(16)
	Gap8 = gap(32)
)

func padding(r UiRect) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Padding = r })
}

func margin(r UiRect) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Margin = r })
}

// Axis atoms touch only their own edges, so px-* and py-* compose
func paddingX(v float64) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Padding.Left, b.Style.Padding.Right = v, v })
}

func paddingY(v float64) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Padding.Top, b.Style.Padding.Bottom = v, v })
}

func marginX(v float64) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Margin.Left, b.Style.Margin.Right = v, v })
}

func marginY(v float64) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Margin.Top, b.Style.Margin.Bottom = v, v })
}

func gap(px float64) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.Style.Gap = px })
}

// Alignment
var (
	ItemsStart   = node(func(b *NodeBundle) { b.Style.AlignItems = AlignItemsStart })
	ItemsCenter  = node(func(b *NodeBundle) { b.Style.AlignItems = AlignItemsCenter })
	ItemsEnd     = node(func(b *NodeBundle) { b.Style.AlignItems = AlignItemsEnd })
	ItemsStretch = node(func(b *NodeBundle) { b.Style.AlignItems = AlignItemsStretch })

	JustifyStart   = node(func(b *NodeBundle) { b.Style.JustifyContent = JustifyContentStart })
	JustifyCenter  = node(func(b *NodeBundle) { b.Style.JustifyContent = JustifyContentCenter })
	JustifyEnd     = node(func(b *NodeBundle) { b.Style.JustifyContent = JustifyContentEnd })
	JustifyBetween = node(func(b *NodeBundle) { b.Style.JustifyContent = JustifyContentSpaceBetween })
	JustifyAround  = node(func(b *NodeBundle) { b.Style.JustifyContent = JustifyContentSpaceAround })
	JustifyEvenly  = node(func(b *NodeBundle) { b.Style.JustifyContent = JustifyContentSpaceEvenly })
)

// Visibility
var (
	Visible       = node(func(b *NodeBundle) { b.Visibility = VisibilityInherited })
	Invisible     = node(func(b *NodeBundle) { b.Visibility = VisibilityHidden })
	AlwaysVisible = node(func(b *NodeBundle) { b.Visibility = VisibilityVisible })
)

// Backgrounds
var (
	BgWhite       = bg(White)
	BgBlack       = bg(Black)
	BgTransparent = bg(Transparent)

	BgRed50  = bg(Red.Shade(50))
	BgRed100 = bg(Red.Shade(100))
	BgRed200 = bg(Red.Shade(200))
	BgRed300 = bg(Red.Shade(300))
	BgRed400 = bg(Red.Shade(400))
	BgRed500 = bg(Red.Shade(500))
	BgRed600 = bg(Red.Shade(600))
	BgRed700 = bg(Red.Shade(700))
	BgRed800 = bg(Red.Shade(800))
	BgRed900 = bg(Red.Shade(900))
	BgRed950 = bg(Red.Shade(950))

	BgGray50  = bg(Gray.Shade(50))
	BgGray100 = bg(Gray.Shade(100))
	BgGray200 = bg(Gray.Shade(200))
	BgGray300 = bg(Gray.Shade(300))
	BgGray400 = bg(Gray.Shade(400))
	BgGray500 = bg(Gray.Shade(500))
	BgGray600 = bg(Gray.Shade(600))
	BgGray700 = bg(Gray.Shade(700))
	BgGray800 = bg(Gray.Shade(800))
	BgGray900 = bg(Gray.Shade(900))
	BgGray950 = bg(Gray.Shade(950))

	BgGreen50  = bg(Green.Shade(50))
	BgGreen100 = bg(Green.Shade(100))
	BgGreen200 = bg(Green.Shade(200))
	BgGreen300 = bg(Green.Shade(300))
	BgGreen400 = bg(Green.Shade(400))
	BgGreen500 = bg(Green.Shade(500))
	BgGreen600 = bg(Green.Shade(600))
	BgGreen700 = bg(Green.Shade(700))
	BgGreen800 = bg(Green.Shade(800))
	BgGreen900 = bg(Green.Shade(900))
	BgGreen950 = bg(Green.Shade(950))

	BgBlue50  = bg(Blue.Shade(50))
	BgBlue100 = bg(Blue.Shade(100))
	BgBlue200 = bg(Blue.Shade(200))
	BgBlue300 = bg(Blue.Shade(300))
	BgBlue400 = bg(Blue.Shade(400))
	BgBlue500 = bg(Blue.Shade(500))
	BgBlue600 = bg(Blue.Shade(600))
	BgBlue700 = bg(Blue.Shade(700))
	BgBlue800 = bg(Blue.Shade(800))
	BgBlue900 = bg(Blue.Shade(900))
	BgBlue950 = bg(Blue.Shade(950))
)

func bg(c color.RGBA) ApplyStyle[NodeBundle] {
	return node(func(b *NodeBundle) { b.BackgroundColor = c })
}

// W sets an arbitrary pixel width, like w-[123px]
func W(px float64) ApplyStyle[NodeBundle] { return width(Px(px)) }

// H sets an arbitrary pixel height
func H(px float64) ApplyStyle[NodeBundle] { return height(Px(px)) }
