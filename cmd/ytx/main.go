// ytx extracts YouTube links from its arguments, files, browser tabs,
// or the clipboard, enriches them through the YouTube Data API, and
// prints the result as JSON, a Markdown list, or an Alfred script
// filter payload.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/luckman212/ytx/internal/clip"
	"github.com/luckman212/ytx/internal/config"
	"github.com/luckman212/ytx/internal/input"
	"github.com/luckman212/ytx/internal/render"
	"github.com/luckman212/ytx/internal/version"
	"github.com/luckman212/ytx/internal/video"
	"github.com/luckman212/ytx/internal/youtube"
)

const usage = "YouTube metadata fetcher\nusage: ytx [-acdmxV] <urls-or-filenames>"

func main() {
	cfg := config.Load()
	args := os.Args[1:]

	mode := render.Plain
	collector := input.NewCollector()

	// Inside an Alfred workflow the output format is fixed and input
	// arrives through the environment: browser tabs when the workflow
	// supplies them, the clipboard otherwise.
	if cfg.InAlfred {
		mode = render.Alfred

		if len(cfg.BrowserTabs) > 0 {
			for _, u := range cfg.BrowserTabs {
				collector.AddURL(u)
			}
		} else {
			readClipboard(collector)
		}
	}

	if len(args) == 0 && mode == render.Plain {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	// Flags are positional: each token is consumed once, in order, and
	// the last output mode flag wins. Everything else is a file path
	// or URL candidate.
	debug := false

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		case "-V", "--version":
			fmt.Println(version.String())
			os.Exit(0)
		case "-c", "--clipboard":
			readClipboard(collector)
		case "-a", "--alfred":
			mode = render.Alfred
		case "-m", "--markdown":
			mode = render.Markdown
		case "-x", "--extended":
			mode = render.Extended
		case "-d", "--debug":
			debug = true
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintln(os.Stderr, usage)
				os.Exit(1)
			}
			collector.AddArg(arg)
		}
	}

	records := collector.Records()

	if debug {
		log.Info("Parsed input", "candidates", collector.Sources())
		for _, r := range records {
			log.Info("Video", "id", r.ID, "timestamp", r.Timestamp)
		}
		return
	}

	if cfg.APIKey == "" {
		if mode == render.Alfred {
			fmt.Println(render.AlfredKeyError())
			return
		}
		log.Error("API key missing or invalid (export 'YTX_API_KEY' before running)")
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := youtube.NewClient(ctx, cfg.APIKey)
	if err != nil {
		if mode == render.Alfred {
			fmt.Println(render.AlfredKeyError())
			return
		}
		log.Fatal("Could not create YouTube API client", "error", err)
	}

	// Sequential fetches, one per unique id. Failures leave the record
	// pending; it stays in plain output but drops out of the sorted
	// renderings.
	results := make([]video.Record, 0, len(records))

	for _, r := range records {
		md, err := client.Metadata(ctx, r.ID)
		if err != nil {
			log.Warn("No metadata for video", "id", r.ID, "error", err)
			results = append(results, r)
			continue
		}
		results = append(results, video.Enrich(r.Pending, md))
	}

	sorted := render.Sorted(results)

	var out string

	switch mode {
	case render.Markdown:
		out = render.MarkdownList(sorted)
	case render.Extended:
		out = render.ExtendedList(sorted)
	case render.Alfred:
		out, err = render.AlfredJSON(sorted)
	default:
		out, err = render.PlainJSON(results)
	}

	if err != nil {
		log.Fatal("Could not render output", "error", err)
	}

	fmt.Println(out)
}

func readClipboard(c *input.Collector) {
	text, err := clip.Text()
	if err != nil {
		log.Warn("Could not read clipboard", "error", err)
		return
	}
	c.AddText(text)
}
