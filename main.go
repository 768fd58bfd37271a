package main

import (
	"context"
	"os"

	"github.com/Sreehari2710/recipie-frontend/cmd"
	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

func main() {
	root := cmd.NewRootCmd()

	// fang wires completions, manpages, --version and signal handling;
	// Ctrl-C cancels the context and aborts in-flight requests.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
