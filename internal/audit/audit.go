// Package audit appends one JSON line per render to a log file.
package audit

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/yuzeguitarist/qrpanel/internal/app"
)

type Entry struct {
	Time        string `json:"time"`
	Source      string `json:"source"` // cli, web, totp
	Action      string `json:"action"` // render, error
	Format      string `json:"format,omitempty"`
	Backend     string `json:"backend,omitempty"`
	ContentLen  int    `json:"contentLen"`
	ModuleCount int    `json:"moduleCount,omitempty"`
	Width       int    `json:"width,omitempty"`
	PointSize   int    `json:"pointSize,omitempty"`
	Margin      int    `json:"margin,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// Log writes entries to Path. A nil or path-less Log discards them.
type Log struct {
	Path string
}

func New(path string) *Log { return &Log{Path: path} }

// Write is best-effort: a render never fails because its log line could
// not be written.
func (l *Log) Write(e Entry) {
	if l == nil || l.Path == "" {
		return
	}
	if e.Time == "" {
		e.Time = app.NowRFC3339()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(l.Path), 0750)
	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(append(b, '\n'))
}
