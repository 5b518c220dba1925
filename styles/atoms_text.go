package styles

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font sizes in pixels
var (
	TextXs   = fontSize(12)
	TextSm   = fontSize(14)
	TextBase = fontSize(16)
	TextLg   = fontSize(18)
	TextXl   = fontSize(20)
	Text2xl  = fontSize(24)
	Text3xl  = fontSize(30)
	Text4xl  = fontSize(36)
	Text5xl  = fontSize(48)
	Text6xl  = fontSize(60)
	Text7xl  = fontSize(72)
	Text8xl  = fontSize(96)
	Text9xl  = fontSize(128)
)

// Text colors
var (
	TextWhite = textColor(White)
	TextBlack = textColor(Black)

	TextRed300   = textColor(Red.Shade(300))
	TextRed500   = textColor(Red.Shade(500))
	TextRed600   = textColor(Red.Shade(600))
	TextRed700   = textColor(Red.Shade(700))
	TextGray300  = textColor(Gray.Shade(300))
	TextGray400  = textColor(Gray.Shade(400))
	TextGray500  = textColor(Gray.Shade(500))
	TextGray700  = textColor(Gray.Shade(700))
	TextGreen500 = textColor(Green.Shade(500))
	TextBlue500  = textColor(Blue.Shade(500))
)

func fontSize(px float64) ApplyStyle[TextStyle] {
	return txt(func(s *TextStyle) { s.FontSize = px })
}

func textColor(c color.RGBA) ApplyStyle[TextStyle] {
	return txt(func(s *TextStyle) { s.Color = c })
}

// FontFamily selects a loaded font face source
func FontFamily(src *text.GoTextFaceSource) ApplyStyle[TextStyle] {
	return txt(func(s *TextStyle) { s.Font = src })
}
