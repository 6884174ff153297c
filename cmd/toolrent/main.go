package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/andy/toolrent/internal/app"
	"github.com/andy/toolrent/internal/cli"
)

func main() {
	// An optional .env in the working directory may carry TOOLRENT_DB_KEY
	_ = godotenv.Load()

	// If the user asked for help, avoid initializing the full app (which may prompt)
	skipInit := false
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" || arg == "help" {
			skipInit = true
			break
		}
	}

	var a *app.App
	if !skipInit {
		var err error
		a, err = app.New(context.Background(), cli.ConfigPathFromArgs(os.Args[1:]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		cli.SetApp(a)
	}

	// cobra has already printed the error
	err := cli.Execute()
	if a != nil {
		a.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
