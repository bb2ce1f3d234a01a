package service

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuzeguitarist/qrpanel/internal/app"
	"github.com/yuzeguitarist/qrpanel/internal/audit"
	"github.com/yuzeguitarist/qrpanel/internal/config"
	"github.com/yuzeguitarist/qrpanel/internal/display"
	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

func TestRenderPanel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "render.log")
	s := New(config.Default(), audit.New(logPath))
	res, err := s.Render(Request{Source: "test", Content: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	g := res.Geometry
	if g.ModuleCount != 21 || g.PointSize != 10 || g.Margin != 15 {
		t.Fatalf("geometry = %+v", g)
	}
	// 320 wide panel: center x 159, offset 39
	if res.Offset != 39 {
		t.Fatalf("offset = %d", res.Offset)
	}
	if res.Image.Bounds().Dx() != 320 || res.Image.Bounds().Dy() != 240 {
		t.Fatalf("panel = %v", res.Image.Bounds())
	}
	x0, y0 := res.Offset+g.Margin, g.Margin
	if !display.IsDark(res.Image.At(x0, y0)) || display.IsDark(res.Image.At(x0-1, y0)) {
		t.Fatal("top-left finder corner misplaced")
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"action":"render"`) {
		t.Fatalf("audit log: %s", b)
	}
}

func TestRenderFit(t *testing.T) {
	s := New(config.Default(), nil)
	res, err := s.Render(Request{Content: "hello", Width: 69, Fit: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Offset != 0 || res.Image.Bounds().Dx() != 69 {
		t.Fatalf("offset %d bounds %v", res.Offset, res.Image.Bounds())
	}
	// 69/23 = 3, margin (69-63)/2 = 3
	if res.Geometry.PointSize != 3 || res.Geometry.Margin != 3 {
		t.Fatalf("geometry = %+v", res.Geometry)
	}
}

func TestRenderErrors(t *testing.T) {
	s := New(config.Default(), nil)
	if _, err := s.Render(Request{}); !errors.Is(err, app.ErrNoContent) {
		t.Fatalf("err = %v, want ErrNoContent", err)
	}
	if _, err := s.Render(Request{Content: "hello", Width: 22, Fit: true}); !errors.Is(err, qrdraw.ErrDimensionTooLarge) {
		t.Fatalf("err = %v, want ErrDimensionTooLarge", err)
	}
	squareOverflow := int(math.Sqrt(float64(math.MaxInt))) + 1
	for _, w := range []int{squareOverflow, -5} {
		if _, err := s.Render(Request{Content: "hello", Width: w, Fit: true}); !errors.Is(err, qrdraw.ErrDimensionTooLarge) {
			t.Fatalf("width %d: err = %v, want ErrDimensionTooLarge", w, err)
		}
		if _, err := s.Geometry("hello", w); !errors.Is(err, qrdraw.ErrDimensionTooLarge) {
			t.Fatalf("geometry width %d: err = %v, want ErrDimensionTooLarge", w, err)
		}
	}
	if _, err := s.Render(Request{Content: "hello", Width: 300}); !errors.Is(err, ErrPanelTooSmall) {
		t.Fatalf("err = %v, want ErrPanelTooSmall", err)
	}
}

func TestGeometry(t *testing.T) {
	s := New(config.Default(), nil)
	g, err := s.Geometry("hello", 500)
	if err != nil {
		t.Fatal(err)
	}
	if g.PointSize != 21 || g.Margin != 29 {
		t.Fatalf("geometry = %+v", g)
	}
}

func TestTerminal(t *testing.T) {
	s := New(config.Default(), nil)
	lines, err := s.Terminal("hello")
	if err != nil {
		t.Fatal(err)
	}
	// 21 modules plus a one module margin on each side, two rows per line
	if len(lines) != 12 {
		t.Fatalf("got %d lines", len(lines))
	}
	// blank margin row over the top edge of the finder pattern and its separator
	if !strings.HasPrefix(lines[0], "█▀▀▀▀▀▀▀█") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	s := New(config.Default(), nil)
	res, err := s.Render(Request{Content: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]display.Format{
		"a.png": display.FormatPNG,
		"b.bmp": display.FormatBMP,
		"c.svg": display.FormatSVG,
		"d":     display.FormatPNG,
	} {
		f, err := s.WriteFile(filepath.Join(dir, name), res)
		if err != nil {
			t.Fatal(err)
		}
		if f != want {
			t.Fatalf("%s: format %q, want %q", name, f, want)
		}
		if fi, err := os.Stat(filepath.Join(dir, name)); err != nil || fi.Size() == 0 {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
}
