package main

import (
	"flag"
	"log"
	"os"

	"lifegif/internal/app"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, err := app.Run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Print(err)
		if app.ExitCode(err) == 2 {
			flag.Usage()
		}
		os.Exit(app.ExitCode(err))
	}
}
