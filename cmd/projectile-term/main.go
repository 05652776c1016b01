// Command projectile-term runs the projectile simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/projectile-motion/internal/config"
	"github.com/iburimskiy/projectile-motion/internal/term"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	launch := config.RegisterLaunchFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	settings, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}
	launch.Apply(&settings)

	// The screen owns the terminal, so log lines would corrupt it.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	term.NewApp(screen, settings, settings.DefaultSpeed, settings.DefaultAngle).Run()
}
