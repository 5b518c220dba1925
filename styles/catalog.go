package styles

// Class names as written in theme strings, Tailwind spelling
var nodeCatalog = map[string]ApplyStyle[NodeBundle]{
	"flex":            Flex,
	"hidden":          Hidden,
	"flex-row":        FlexRow,
	"flex-col":        FlexCol,
	"grow":            Grow,
	"grow-0":          Grow0,
	"w-0":             W0,
	"w-1":             W1,
	"w-2":             W2,
	"w-4":             W4,
	"w-8":             W8,
	"w-12":            W12,
	"w-16":            W16,
	"w-20":            W20,
	"w-24":            W24,
	"w-32":            W32,
	"w-40":            W40,
	"w-48":            W48,
	"w-64":            W64,
	"w-80":            W80,
	"w-96":            W96,
	"w-1/2":           WHalf,
	"w-full":          WFull,
	"w-auto":          WAuto,
	"h-0":             H0,
	"h-1":             H1,
	"h-2":             H2,
	"h-4":             H4,
	"h-8":             H8,
	"h-12":            H12,
	"h-16":            H16,
	"h-20":            H20,
	"h-24":            H24,
	"h-32":            H32,
	"h-40":            H40,
	"h-48":            H48,
	"h-64":            H64,
	"h-80":            H80,
	"h-96":            H96,
	"h-1/2":           HHalf,
	"h-full":          HFull,
	"h-auto":          HAuto,
	"p-0":             P0,
	"p-1":             P1,
	"p-2":             P2,
	"p-3":             P3,
	"p-4":             P4,
	"p-6":             P6,
	"p-8":             P8,
	"p-12":            P12,
	"p-16":            P16,
	"px-1":            Px1,
	"px-2":            Px2,
	"px-4":            Px4,
	"px-8":            Px8,
	"py-1":            Py1,
	"py-2":            Py2,
	"py-4":            Py4,
	"py-8":            Py8,
	"m-0":             M0,
	"m-1":             M1,
	"m-2":             M2,
	"m-4":             M4,
	"m-8":             M8,
	"mx-2":            Mx2,
	"mx-4":            Mx4,
	"my-2":            My2,
	"my-4":            My4,
	"gap-0":           Gap0,
	"gap-1":           Gap1,
	"gap-2":           Gap2,
	"gap-4":           Gap4,
	"gap-8":           Gap8,
	"items-start":     ItemsStart,
	"items-center":    ItemsCenter,
	"items-end":       ItemsEnd,
	"items-stretch":   ItemsStretch,
	"justify-start":   JustifyStart,
	"justify-center":  JustifyCenter,
	"justify-end":     JustifyEnd,
	"justify-between": JustifyBetween,
	"justify-around":  JustifyAround,
	"justify-evenly":  JustifyEvenly,
	"visible":         Visible,
	"invisible":       Invisible,
	"always-visible":  AlwaysVisible,
	"bg-white":        BgWhite,
	"bg-black":        BgBlack,
	"bg-transparent":  BgTransparent,
	"bg-red-50":       BgRed50,
	"bg-red-100":      BgRed100,
	"bg-red-200":      BgRed200,
	"bg-red-300":      BgRed300,
	"bg-red-400":      BgRed400,
	"bg-red-500":      BgRed500,
	"bg-red-600":      BgRed600,
	"bg-red-700":      BgRed700,
	"bg-red-800":      BgRed800,
	"bg-red-900":      BgRed900,
	"bg-red-950":      BgRed950,
	"bg-gray-50":      BgGray50,
	"bg-gray-100":     BgGray100,
	"bg-gray-200":     BgGray200,
	"bg-gray-300":     BgGray300,
	"bg-gray-400":     BgGray400,
	"bg-gray-500":     BgGray500,
	"bg-gray-600":     BgGray600,
	"bg-gray-700":     BgGray700,
	"bg-gray-800":     BgGray800,
	"bg-gray-900":     BgGray900,
	"bg-gray-950":     BgGray950,
	"bg-green-50":     BgGreen50,
	"bg-green-100":    BgGreen100,
	"bg-green-200":    BgGreen200,
	"bg-green-300":    BgGreen300,
	"bg-green-400":    BgGreen400,
	"bg-green-500":    BgGreen500,
	"bg-green-600":    BgGreen600,
	"bg-green-700":    BgGreen700,
	"bg-green-800":    BgGreen800,
	"bg-green-900":    BgGreen900,
	"bg-green-950":    BgGreen950,
	"bg-blue-50":      BgBlue50,
	"bg-blue-100":     BgBlue100,
	"bg-blue-200":     BgBlue200,
	"bg-blue-300":     BgBlue300,
	"bg-blue-400":     BgBlue400,
	"bg-blue-500":     BgBlue500,
	"bg-blue-600":     BgBlue600,
	"bg-blue-700":     BgBlue700,
	"bg-blue-800":     BgBlue800,
	"bg-blue-900":     BgBlue900,
	"bg-blue-950":     BgBlue950,
}

var textCatalog = map[string]ApplyStyle[TextStyle]{
	"text-xs":        TextXs,
	"text-sm":        TextSm,
	"text-base":      TextBase,
	"text-lg":        TextLg,
	"text-xl":        TextXl,
	"text-2xl":       Text2xl,
	"text-3xl":       Text3xl,
	"text-4xl":       Text4xl,
	"text-5xl":       Text5xl,
	"text-6xl":       Text6xl,
	"text-7xl":       Text7xl,
	"text-8xl":       Text8xl,
	"text-9xl":       Text9xl,
	"text-white":     TextWhite,
	"text-black":     TextBlack,
	"text-red-300":   TextRed300,
	"text-red-500":   TextRed500,
	"text-red-600":   TextRed600,
	"text-red-700":   TextRed700,
	"text-gray-300":  TextGray300,
	"text-gray-400":  TextGray400,
	"text-gray-500":  TextGray500,
	"text-gray-700":  TextGray700,
	"text-green-500": TextGreen500,
	"text-blue-500":  TextBlue500,
}
