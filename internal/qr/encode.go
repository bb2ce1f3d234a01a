package qr

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/boombuler/barcode"
	bqr "github.com/boombuler/barcode/qr"
	qrcode "github.com/skip2/go-qrcode"
)

type Level string

const (
	LevelLow      Level = "L"
	LevelMedium   Level = "M"
	LevelQuartile Level = "Q"
	LevelHigh     Level = "H"
)

type Backend string

const (
	BackendSkip2     Backend = "skip2"
	BackendBoombuler Backend = "boombuler"
)

type Options struct {
	Level   Level
	Backend Backend
}

func DefaultOptions() Options {
	return Options{Level: LevelMedium, Backend: BackendSkip2}
}

func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToUpper(strings.TrimSpace(s))); l {
	case LevelLow, LevelMedium, LevelQuartile, LevelHigh:
		return l, nil
	}
	return "", fmt.Errorf("unknown error correction level %q (want L, M, Q or H)", s)
}

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendSkip2, BackendBoombuler:
		return b, nil
	}
	return "", fmt.Errorf("unknown encoder backend %q (want skip2 or boombuler)", s)
}

// Encode turns content into a module grid without any quiet zone;
// the rasterizer adds its own margin.
func Encode(content string, opts Options) (Grid, error) {
	if content == "" {
		return nil, fmt.Errorf("empty content")
	}
	if opts.Level == "" {
		opts.Level = LevelMedium
	}
	switch opts.Backend {
	case "", BackendSkip2:
		return encodeSkip2(content, opts.Level)
	case BackendBoombuler:
		return encodeBoombuler(content, opts.Level)
	}
	return nil, fmt.Errorf("unknown encoder backend %q", opts.Backend)
}

func encodeSkip2(content string, level Level) (Grid, error) {
	var rl qrcode.RecoveryLevel
	switch level {
	case LevelLow:
		rl = qrcode.Low
	case LevelMedium:
		rl = qrcode.Medium
	case LevelQuartile:
		rl = qrcode.High
	case LevelHigh:
		rl = qrcode.Highest
	default:
		return nil, fmt.Errorf("unknown error correction level %q", level)
	}
	q, err := qrcode.New(content, rl)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()
	if len(bitmap) == 0 {
		return nil, fmt.Errorf("empty qr")
	}
	return Matrix(bitmap), nil
}

func encodeBoombuler(content string, level Level) (Grid, error) {
	var ecl bqr.ErrorCorrectionLevel
	switch level {
	case LevelLow:
		ecl = bqr.L
	case LevelMedium:
		ecl = bqr.M
	case LevelQuartile:
		ecl = bqr.Q
	case LevelHigh:
		ecl = bqr.H
	default:
		return nil, fmt.Errorf("unknown error correction level %q", level)
	}
	code, err := bqr.Encode(content, ecl, bqr.Auto)
	if err != nil {
		return nil, err
	}
	return barcodeGrid{code}, nil
}

// barcodeGrid reads modules straight off a boombuler barcode, which is
// rendered one pixel per module with no border.
type barcodeGrid struct {
	code barcode.Barcode
}

func (g barcodeGrid) Size() int { return g.code.Bounds().Dx() }

func (g barcodeGrid) Module(x, y int) bool {
	b := g.code.Bounds()
	c := color.GrayModel.Convert(g.code.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
	return c.Y < 0x80
}
