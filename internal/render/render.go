// Package render turns the final record set into one of the four
// output formats: plain JSON, Markdown list, extended Markdown list,
// or an Alfred script filter payload.
package render

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/luckman212/ytx/internal"
	"github.com/luckman212/ytx/internal/video"
)

// Mode selects the output format. It is chosen once from the CLI
// flags; the last mode flag seen wins.
type Mode int

const (
	Plain Mode = iota
	Markdown
	Extended
	Alfred
)

// Sorted drops records that never got metadata and orders the rest by
// post date, newest first. Plain mode bypasses this and keeps
// enrichment order, pending records included.
func Sorted(records []video.Record) []video.Record {
	out := make([]video.Record, 0, len(records))
	for _, r := range records {
		if r.Meta != nil && r.Meta.PostDate != "" {
			out = append(out, r)
		}
	}

	// Post dates are ISO, so reverse string order is reverse
	// chronological order.
	slices.SortStableFunc(out, func(a, b video.Record) int {
		return strings.Compare(b.Meta.PostDate, a.Meta.PostDate)
	})

	return out
}

// plainItem mirrors the record fields with stable JSON names. Pointer
// fields serialize as null until enrichment fills them in.
type plainItem struct {
	VideoID      string  `json:"video_id"`
	Title        *string `json:"title"`
	Timestamp    *string `json:"timestamp"`
	Channel      *string `json:"channel"`
	PostDate     *string `json:"post_date"`
	ViewCount    *int64  `json:"view_count"`
	Duration     *string `json:"duration"`
	ShortURL     *string `json:"short_url"`
	MarkdownLink *string `json:"markdown_link"`
	ExtendedLink *string `json:"extended_link"`
}

// PlainJSON serializes every record, enriched or not, in the order the
// enrichment loop produced them.
func PlainJSON(records []video.Record) (string, error) {
	items := make([]plainItem, 0, len(records))

	for _, r := range records {
		item := plainItem{VideoID: r.ID}
		if r.Timestamp != "" {
			item.Timestamp = ptr(r.Timestamp)
		}
		if m := r.Meta; m != nil {
			item.Title = ptr(m.Title)
			item.Channel = ptr(m.Channel)
			item.PostDate = ptr(m.PostDate)
			item.ViewCount = ptr(m.ViewCount)
			item.Duration = ptr(m.Duration)
			item.ShortURL = ptr(m.ShortURL)
			item.MarkdownLink = ptr(m.MarkdownLink)
			item.ExtendedLink = ptr(m.ExtendedLink)
		}
		items = append(items, item)
	}

	out, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}
	return string(out), nil
}

// MarkdownList renders one bullet per record's markdown link.
func MarkdownList(records []video.Record) string {
	return bulletList(records, func(m *video.Enriched) string { return m.MarkdownLink })
}

// ExtendedList renders one bullet per record's extended link.
func ExtendedList(records []video.Record) string {
	return bulletList(records, func(m *video.Enriched) string { return m.ExtendedLink })
}

func bulletList(records []video.Record, link func(*video.Enriched) string) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		if r.Meta == nil || link(r.Meta) == "" {
			continue
		}
		lines = append(lines, "- "+link(r.Meta))
	}
	return strings.Join(lines, "\n")
}

type alfredIcon struct {
	Path string `json:"path"`
}

type alfredMod struct {
	Subtitle  string            `json:"subtitle,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// alfredItem is one row of a script filter result. The valid field is
// only ever emitted when explicitly false.
type alfredItem struct {
	Title     string               `json:"title"`
	Subtitle  string               `json:"subtitle,omitempty"`
	Arg       string               `json:"arg,omitempty"`
	Valid     *bool                `json:"valid,omitempty"`
	Icon      *alfredIcon          `json:"icon,omitempty"`
	Mods      map[string]alfredMod `json:"mods,omitempty"`
	Variables map[string]string    `json:"variables,omitempty"`
}

type scriptFilter struct {
	Items []alfredItem `json:"items"`
}

// AlfredJSON renders the sorted records as a script filter payload.
// The first entry is a synthetic "copy everything" action; with no
// records at all, a single informational row is emitted instead.
func AlfredJSON(records []video.Record) (string, error) {
	if len(records) == 0 {
		return marshalFilter(scriptFilter{Items: []alfredItem{{
			Title: "No results from the current clipboard contents!",
			Valid: ptr(false),
		}}})
	}

	items := make([]alfredItem, 0, len(records)+1)
	for _, r := range records {
		m := r.Meta
		if m == nil || m.Title == "" || m.ShortURL == "" {
			continue
		}
		items = append(items, alfredItem{
			Title:    m.Title + " (" + m.Duration + ")",
			Arg:      m.ShortURL,
			Subtitle: m.PostDate,
			Mods: map[string]alfredMod{
				"alt": {Subtitle: m.Title},
				"cmd": {Subtitle: m.Channel + " · " + internal.PrettyViewCount(m.ViewCount) + " views"},
			},
		})
	}

	copyAll := alfredItem{
		Title:    "Copy all items in Markdown link format",
		Subtitle: fmt.Sprintf("(%d videos)", len(items)),
		Arg:      ExtendedList(records),
		Mods: map[string]alfredMod{
			"alt": {
				Subtitle:  "edit results in TextView",
				Variables: map[string]string{"action": "textview"},
			},
		},
		Icon:      &alfredIcon{Path: "copy-as-markdown.png"},
		Variables: map[string]string{"action": "copy"},
	}

	return marshalFilter(scriptFilter{Items: append([]alfredItem{copyAll}, items...)})
}

// AlfredKeyError is the payload shown when no API key is configured.
func AlfredKeyError() string {
	out, _ := marshalFilter(scriptFilter{Items: []alfredItem{{
		Title: "API key missing or invalid. Check workflow configuration!",
		Icon:  &alfredIcon{Path: "api-err.png"},
		Valid: ptr(false),
	}}})
	return out
}

func marshalFilter(sf scriptFilter) (string, error) {
	out, err := json.MarshalIndent(sf, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal script filter: %w", err)
	}
	return string(out), nil
}

func ptr[T any](v T) *T {
	return &v
}
