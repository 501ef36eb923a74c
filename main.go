package main

import (
	"os"

	"github.com/lexpr-lang/lexpr/cmd"
)

func main() {
	app := cmd.NewApp()
	os.Exit(app.Main(os.Args[1:]))
}
