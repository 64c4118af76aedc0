package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"dagenreels/internal/artifact"
	"dagenreels/internal/convert"
	"dagenreels/internal/textutil"
	"dagenreels/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// config holds the parsed CLI configuration.
type config struct {
	server  string
	outDir  string
	lang    string
	logFile string
	url     string
	scenes  bool
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.server, "server", "", "reelsd base URL (default $REELS_SERVER or "+convert.DefaultServerURL+")")
	flag.StringVar(&cfg.outDir, "out", "", "directory for downloaded reels (default $"+artifact.DownloadDirEnv+" or ~/Downloads)")
	flag.StringVar(&cfg.lang, "lang", string(ui.LangNorwegian), "UI language: nb or en")
	flag.StringVar(&cfg.logFile, "log", "reels.log", "log file; the terminal is owned by the UI")
	flag.StringVar(&cfg.url, "url", "", "pre-fill the article URL")
	flag.BoolVar(&cfg.scenes, "scenes", false, "print the scene texts for -url and exit, without rendering")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reels [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reels turns a news article into a short vertical video using a reelsd server.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if cfg.scenes && cfg.url == "" {
		fmt.Fprintln(os.Stderr, "error: -scenes requires -url")
		flag.Usage()
		os.Exit(2)
	}
	return cfg
}

func main() {
	cfg := parseFlags()
	client := convert.NewClient(cfg.server)

	if cfg.scenes {
		if err := printScenes(client, cfg.url); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := tea.LogToFile(cfg.logFile, "reels")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var store *artifact.Store
	if cfg.outDir != "" {
		store = artifact.NewStoreAt(cfg.outDir)
	} else if store, err = artifact.NewStore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("reels: server=%s downloads=%s", client.BaseURL(), store.BaseDir())

	model := ui.NewAppModel(context.Background(), ui.Options{
		Client:     client,
		Store:      store,
		Lang:       ui.Lang(cfg.lang),
		InitialURL: cfg.url,
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes(c *convert.Client, article string) error {
	resp, err := c.Scenes(context.Background(), article)
	if err != nil {
		return err
	}
	if len(resp.Scenes) == 0 {
		fmt.Println("(no scenes)")
		return nil
	}
	for i, s := range resp.Scenes {
		for j, line := range textutil.Wrap(s, 72) {
			prefix := "   "
			if j == 0 {
				prefix = fmt.Sprintf("%2d.", i+1)
			}
			fmt.Println(prefix, line)
		}
	}
	return nil
}
