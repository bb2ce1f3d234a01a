package main

import "github.com/yuzeguitarist/qrpanel/internal/cmd"

func main() {
	cmd.Execute()
}
