// Package config assembles the immutable per-run configuration from
// the environment. Nothing here changes after startup.
package config

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
	"github.com/luckman212/ytx/internal/onepassword"
)

// YTX_KEY_METHOD selector values. Unset behaves like STATIC.
const (
	KeyMethodStatic    = "STATIC"
	KeyMethod1Password = "1PASSWORD"
)

// Config carries everything the pipeline needs to know about this run.
type Config struct {
	APIKey      string
	InAlfred    bool
	BrowserTabs []string // tab URLs handed over by the Alfred workflow, if any
}

type browserTab struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Load reads the environment. A 1Password failure degrades to an empty
// key; the key check itself happens later, right before the first
// network call.
func Load() Config {
	cfg := Config{
		InAlfred: os.Getenv("alfred_workflow_uid") != "",
	}

	switch os.Getenv("YTX_KEY_METHOD") {
	case KeyMethod1Password:
		key, err := onepassword.Credential(os.Getenv("YTX_OP_UUID"))
		if err != nil {
			log.Warn("Could not retrieve API key from 1Password", "error", err)
		}
		cfg.APIKey = key
	default: // STATIC or unset
		cfg.APIKey = os.Getenv("YTX_API_KEY")
	}

	if raw := os.Getenv("BROWSER_TABS"); raw != "" {
		var tabs []browserTab
		if err := json.Unmarshal([]byte(raw), &tabs); err != nil {
			log.Warn("Ignoring malformed BROWSER_TABS payload", "error", err)
		}
		for _, t := range tabs {
			cfg.BrowserTabs = append(cfg.BrowserTabs, t.URL)
		}
	}

	return cfg
}
