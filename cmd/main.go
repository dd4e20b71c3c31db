package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jaki95/track-search/config"
	"github.com/jaki95/track-search/internal/deezer"
	"github.com/jaki95/track-search/internal/playlist"
	"github.com/jaki95/track-search/internal/session"
	"github.com/jaki95/track-search/tracksearch"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "Path to the configuration file")
	query := flag.String("q", "", "Search once for this query and exit")
	trackID := flag.Int64("id", 0, "Look up a single track by ID and exit")
	interactive := flag.Bool("interactive", false, "Prompt for queries until quit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	searcher := tracksearch.New(deezer.NewClient(cfg.Deezer), cfg.Deezer.PlaceholderCover)
	state := session.NewState()
	renderer := playlist.NewTextRenderer(os.Stdout)
	spinner := playlist.NewSpinner(nil)

	switch {
	case *trackID != 0:
		spinner.Start(fmt.Sprintf("Fetching track %d...", *trackID))
		track, ok, err := searcher.GetByID(ctx, state, *trackID)
		spinner.Stop()
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			log.Fatalf("track %d not found", *trackID)
		}
		if err := renderer.RenderTrack(track); err != nil {
			log.Fatal(err)
		}

	case *interactive:
		loop := playlist.NewLoop(searcher, renderer, spinner, state, os.Stdout)
		if err := loop.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}

	default:
		// An empty -q falls back to trending.
		spinner.Start("Searching...")
		tracks, err := searcher.Search(ctx, state, *query)
		spinner.Stop()
		if rerr := renderer.Render(tracks, err); rerr != nil {
			log.Fatal(rerr)
		}
		if err != nil {
			os.Exit(1)
		}
	}
}
