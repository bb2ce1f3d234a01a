package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "render.log")
	l := New(path)
	l.Write(Entry{Source: "cli", Action: "render", Width: 240, PointSize: 10, Margin: 15})
	l.Write(Entry{Source: "web", Action: "error", Detail: "boom"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var got []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatal(err)
		}
		got = append(got, e)
	}
	if len(got) != 2 || got[0].PointSize != 10 || got[1].Detail != "boom" || got[0].Time == "" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestNilLogDiscards(t *testing.T) {
	var l *Log
	l.Write(Entry{Action: "render"})
	New("").Write(Entry{Action: "render"})
}
