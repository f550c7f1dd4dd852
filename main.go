package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/iburimskiy/atom-viewer/internal/audio"
	"github.com/iburimskiy/atom-viewer/internal/config"
	"github.com/iburimskiy/atom-viewer/internal/game"
	"github.com/iburimskiy/atom-viewer/internal/logx"
)

func main() {
	configPath := pflag.String("config", config.DefaultConfigPath, "path to the TOML config file")
	verbosity := pflag.CountP("verbose", "v", "log more (-vv for debug)")
	quiet := pflag.BoolP("quiet", "q", false, "log errors only")
	seed := pflag.Int64("seed", config.CloudSeed, "seed for the electron cloud")
	background := pflag.String("background", "", "background image (png or jpeg)")
	mute := pflag.Bool("mute", false, "start without the element chime")
	pflag.Parse()

	logx.SetDefault(os.Stderr, logx.LevelFromFlags(*verbosity, *quiet))

	cfg, found, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if found {
		slog.Info("config loaded", "path", *configPath)
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Cloud.Seed = *seed
	}
	if *background != "" {
		cfg.Background = *background
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	game.PrintHelp(os.Stdout)

	chime := audio.NewChime(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := chime.Open(); err != nil {
			slog.Warn("audio disabled", "err", err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := game.New(cfg, chime)
	if err := ebiten.RunGame(g); !game.IsTermination(err) {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
