// Package bigchar renders Hangul syllables as large half-block art for the
// terminal.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Korean-capable fonts in common system locations.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/AppleSDGothicNeo.ttc",
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	// Windows
	"C:\\Windows\\Fonts\\malgun.ttf",
	"C:\\Windows\\Fonts\\gulim.ttc",
}

var (
	faceOnce sync.Once
	face     font.Face

	cacheMu sync.Mutex
	cache   = map[string]string{}
)

func loadFace() {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if f, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 64, DPI: 72}); err == nil {
					face = f
					return
				}
			}
		}
		if fnt, err := opentype.Parse(data); err == nil {
			if f, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 64, DPI: 72}); err == nil {
				face = f
				return
			}
		}
	}
}

// Available reports whether a Korean-capable font was found.
func Available() bool {
	faceOnce.Do(loadFace)
	return face != nil
}

// Render draws a syllable as half-block art sized cols x rows terminal
// cells. It returns "" when no usable font is available.
func Render(syllable rune, cols, rows int) string {
	if !Available() {
		return ""
	}

	cacheMu.Lock()
	key := fmt.Sprintf("%c/%dx%d", syllable, cols, rows)
	if s, ok := cache[key]; ok {
		cacheMu.Unlock()
		return s
	}
	cacheMu.Unlock()

	rendered := render(syllable, cols, rows)

	cacheMu.Lock()
	cache[key] = rendered
	cacheMu.Unlock()
	return rendered
}

func render(syllable rune, cols, rows int) string {
	bounds, _, ok := face.GlyphBounds(syllable)
	if !ok {
		return ""
	}
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const padding = 4
	srcW := max(glyphW+2*padding, 64)
	srcH := max(glyphH+2*padding, 64)

	src := image.NewGray(image.Rect(0, 0, srcW, srcH))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P((srcW-glyphW)/2, srcH-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(syllable))

	// Half blocks give two vertical pixels per cell.
	scaled := scale(src, cols, rows*2)
	return blocks(scaled, cols, rows)
}

// scale shrinks src to w x h using area averaging.
func scale(src *image.Gray, w, h int) *image.Gray {
	srcW := src.Bounds().Max.X
	srcH := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			x1 := dx * srcW / w
			y1 := dy * srcH / h
			x2 := max((dx+1)*srcW/w, x1+1)
			y2 := max((dy+1)*srcH/h, y1+1)
			if x2 > srcW {
				x2 = srcW
			}
			if y2 > srcH {
				y2 = srcH
			}

			var sum, n int
			for y := y1; y < y2; y++ {
				for x := x1; x < x2; x++ {
					sum += int(src.GrayAt(x, y).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

func blocks(img *image.Gray, cols, rows int) string {
	const threshold = 40
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.GrayAt(col, row*2).Y > threshold
			bottom := img.GrayAt(col, row*2+1).Y > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
