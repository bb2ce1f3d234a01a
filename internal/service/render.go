package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/yuzeguitarist/qrpanel/internal/app"
	"github.com/yuzeguitarist/qrpanel/internal/audit"
	"github.com/yuzeguitarist/qrpanel/internal/config"
	"github.com/yuzeguitarist/qrpanel/internal/display"
	"github.com/yuzeguitarist/qrpanel/internal/qr"
	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

var ErrPanelTooSmall = errors.New("canvas does not fit the panel")

// Request is one render. Zero fields fall back to the config.
type Request struct {
	Source  string // cli, web, totp; recorded in the audit log
	Content string
	Width   int
	// Fit draws onto a panel exactly the size of the canvas with no
	// horizontal offset, producing a plain square QR image.
	Fit bool
}

type Result struct {
	Image    *image.Paletted
	Geometry qrdraw.Geometry
	Offset   int
}

type Service struct {
	cfg *config.Config
	log *audit.Log
}

func New(cfg *config.Config, log *audit.Log) *Service {
	return &Service{cfg: cfg, log: log}
}

func (s *Service) Config() *config.Config { return s.cfg }

func (s *Service) encode(content string) (qr.Grid, error) {
	if content == "" {
		return nil, app.ErrNoContent
	}
	opts, err := s.cfg.EncoderOptions()
	if err != nil {
		return nil, err
	}
	return qr.Encode(content, opts)
}

func (s *Service) width(req Request) int {
	if req.Width != 0 {
		return req.Width
	}
	return s.cfg.Canvas.Width
}

// Render encodes the content, rasterizes it onto a canvas and draws the
// canvas onto a monochrome panel.
func (s *Service) Render(req Request) (*Result, error) {
	res, err := s.render(req)
	if err != nil {
		s.log.Write(audit.Entry{Source: req.Source, Action: "error", ContentLen: len(req.Content), Width: s.width(req), Detail: err.Error()})
		return nil, err
	}
	g := res.Geometry
	s.log.Write(audit.Entry{
		Source:      req.Source,
		Action:      "render",
		Backend:     s.cfg.Encoder.Backend,
		ContentLen:  len(req.Content),
		ModuleCount: g.ModuleCount,
		Width:       g.Width,
		PointSize:   g.PointSize,
		Margin:      g.Margin,
	})
	return res, nil
}

func (s *Service) render(req Request) (*Result, error) {
	grid, err := s.encode(req.Content)
	if err != nil {
		return nil, err
	}
	width := s.width(req)
	if _, err := qrdraw.Layout(grid.Size(), width); err != nil {
		return nil, err
	}
	canvas := qrdraw.NewCanvas(width)
	d := qrdraw.New(grid, canvas)
	geo, err := d.Prepare(width)
	if err != nil {
		return nil, err
	}

	var panel *image.Paletted
	var opts []qrdraw.Option
	if req.Fit {
		panel = display.NewPanel(width, width)
		opts = append(opts, qrdraw.WithCenterDivisor(0))
	} else {
		panel = display.NewPanel(s.cfg.Panel.Width, s.cfg.Panel.Height)
		opts = append(opts, qrdraw.WithCenterDivisor(s.cfg.Panel.CenterDivisor))
	}
	dx := qrdraw.Offset(panel.Bounds(), opts...)
	if dx+width > panel.Bounds().Dx() || width > panel.Bounds().Dy() {
		return nil, fmt.Errorf("%w: canvas %d at offset %d on %dx%d", ErrPanelTooSmall, width, dx, panel.Bounds().Dx(), panel.Bounds().Dy())
	}
	if err := d.Draw(&display.ImageTarget{Img: panel, Strict: true}, opts...); err != nil {
		return nil, err
	}
	return &Result{Image: panel, Geometry: geo, Offset: dx}, nil
}

// Geometry reports the layout a render of content would use.
func (s *Service) Geometry(content string, width int) (qrdraw.Geometry, error) {
	grid, err := s.encode(content)
	if err != nil {
		return qrdraw.Geometry{}, err
	}
	return qrdraw.Layout(grid.Size(), s.width(Request{Width: width}))
}

// Terminal renders content at one pixel per module for a text terminal.
func (s *Service) Terminal(content string) ([]string, error) {
	grid, err := s.encode(content)
	if err != nil {
		return nil, err
	}
	width := grid.Size() + 2
	canvas := qrdraw.NewCanvas(width)
	if _, err := qrdraw.New(grid, canvas).Prepare(width); err != nil {
		return nil, err
	}
	term := display.NewTerminal(width, width)
	if err := qrdraw.Draw[bool](canvas, term, display.Ink{}, qrdraw.WithCenterDivisor(0)); err != nil {
		return nil, err
	}
	return term.Lines(), nil
}

func (s *Service) Encode(res *Result, f display.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := display.Encode(&buf, res.Image, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes res in the format implied by path and writes it atomically.
func (s *Service) WriteFile(path string, res *Result) (display.Format, error) {
	def, err := display.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return "", err
	}
	f := display.FormatFromPath(path, def)
	b, err := s.Encode(res, f)
	if err != nil {
		return "", err
	}
	return f, app.AtomicWriteFile(path, 0644, b)
}
