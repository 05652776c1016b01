package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/projectile-motion/internal/config"
	"github.com/iburimskiy/projectile-motion/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	launch := config.RegisterLaunchFlags(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable launch and landing tones")
	flag.Parse()

	settings, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	launch.Apply(&settings)
	if *mute {
		settings.Sound = false
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - Enter: Launch, Space: Pause, Esc: Quit")
	ebiten.SetTPS(settings.TicksPerSecond())

	g := game.New(settings)
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
