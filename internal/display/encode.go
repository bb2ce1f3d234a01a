package display

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case FormatPNG, FormatBMP, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown image format %q (want png, bmp or svg)", s)
}

// FormatFromPath picks the format from the file extension, falling back
// to def when the extension is not recognized.
func FormatFromPath(path string, def Format) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return def
}

func ContentType(f Format) string {
	switch f {
	case FormatBMP:
		return "image/bmp"
	case FormatSVG:
		return "image/svg+xml"
	}
	return "image/png"
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatSVG:
		_, err := w.Write(SVG(img))
		return err
	}
	return fmt.Errorf("unknown image format %q", f)
}

// SVG renders img as a white rectangle with one black rect per horizontal
// run of dark pixels.
func SVG(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, w, h, w, h)
	buf.WriteString(`<rect width="100%" height="100%" fill="white"/>`)
	for y := 0; y < h; y++ {
		for x := 0; x < w; {
			if !IsDark(img.At(b.Min.X+x, b.Min.Y+y)) {
				x++
				continue
			}
			start := x
			for x < w && IsDark(img.At(b.Min.X+x, b.Min.Y+y)) {
				x++
			}
			fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="1" fill="black"/>`, start, y, x-start)
		}
	}
	buf.WriteString(`</svg>`)
	return buf.Bytes()
}
