// Package input turns raw command line tokens, file contents, and
// clipboard text into a deduplicated list of pending video records.
package input

import (
	"os"

	"github.com/luckman212/ytx/internal/video"
)

// Collector accumulates pending records in insertion order, keyed by
// video id. The first occurrence of an id wins, timestamp included;
// later sightings are dropped silently.
type Collector struct {
	records []video.Record
	index   map[string]struct{}
	sources []string
}

func NewCollector() *Collector {
	return &Collector{index: make(map[string]struct{})}
}

// AddURL resolves one candidate URL and records the video it names,
// unless that id was already seen.
func (c *Collector) AddURL(rawURL string) {
	c.sources = append(c.sources, rawURL)

	id, ts := video.Resolve(rawURL)
	if id == "" {
		return
	}
	if _, ok := c.index[id]; ok {
		return
	}

	c.index[id] = struct{}{}
	c.records = append(c.records, video.Record{Pending: video.Pending{ID: id, Timestamp: ts}})
}

// AddText scans a block of free text for YouTube URLs and records each
// one found.
func (c *Collector) AddText(text string) {
	for _, link := range video.ExtractLinks(text) {
		c.AddURL(link)
	}
}

// AddArg handles one non-flag command line token. A token naming an
// existing file has its contents scanned for URLs; anything else is a
// URL candidate itself. Unreadable files are skipped.
func (c *Collector) AddArg(arg string) {
	if _, err := os.Stat(arg); err == nil {
		data, err := os.ReadFile(arg)
		if err != nil {
			return
		}
		c.AddText(string(data))
		return
	}

	c.AddURL(arg)
}

// Records returns the pending records in insertion order.
func (c *Collector) Records() []video.Record {
	return c.records
}

// Sources returns every raw URL candidate seen so far, for the debug
// dump.
func (c *Collector) Sources() []string {
	return c.sources
}
