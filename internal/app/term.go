package app

import "os"

// ANSI SGR codes used by the CLI.
const (
	Bold     = "1"
	Red      = "31"
	Green    = "32"
	Dim      = "2"
	InkPaper = "97;40" // bright white on black, for half-block QR output
)

// Color wraps text with ANSI color code when stdout is a terminal and NO_COLOR is not set.
func Color(text, code string) string {
	if code == "" || !ColorEnabled() {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
