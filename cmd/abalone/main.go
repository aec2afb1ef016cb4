package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"abalone_go/internal/game"
	"abalone_go/internal/ui"
)

func main() {
	// ──────── 命令行参数 ────────
	var (
		layout   = flag.String("layout", "standard", "starting layout: "+strings.Join(game.LayoutNames(), ", "))
		hints    = flag.Bool("hints", true, "highlight legal targets of the current selection")
		tps      = flag.Int("tps", 60, "logic updates per second")
		logLevel = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
		dump     = flag.Bool("dump", false, "print the starting board and legal move count, then exit")
	)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *dump {
		data, err := game.LayoutByName(*layout)
		if err != nil {
			log.Fatal().Err(err).Msg("load layout")
		}
		b := game.FromData(data)
		fmt.Print(b)
		fmt.Printf("black moves: %d  white moves: %d\n",
			len(game.GenerateMoves(b, game.Black)), len(game.GenerateMoves(b, game.White)))
		return
	}

	log.Info().Msgf("Abalone started: layout=%s hints=%v tps=%d", *layout, *hints, *tps)

	// ──────── 启动 UI 主循环 ────────
	cfg := ui.Config{Layout: *layout, Hints: *hints, TPS: *tps}
	if err := ui.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("abalone exited")
	}
}

// go build -ldflags="-s -w" -o abalone ./cmd/abalone
