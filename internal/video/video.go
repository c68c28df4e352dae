// Package video holds the record types for YouTube videos moving
// through the pipeline, plus the URL and duration parsing that turns
// raw input into canonical records.
package video

import "strings"

// Pending identifies a video discovered in the input before any
// metadata lookup has happened.
type Pending struct {
	ID        string
	Timestamp string // start offset in seconds from the source URL, "" when absent
}

// Enriched carries the metadata for a video after a successful API
// lookup. The link fields are derived once here so every renderer
// agrees on them.
type Enriched struct {
	Title        string
	Channel      string
	PostDate     string // YYYY-MM-DD
	ViewCount    int64
	Duration     string // display form, H:MM:SS or MM:SS
	ShortURL     string
	MarkdownLink string
	ExtendedLink string
}

// Record is one video in the pipeline. Meta stays nil when enrichment
// fails; such records still appear in plain output but are excluded
// from every date-sorted rendering.
type Record struct {
	Pending
	Meta *Enriched
}

// Metadata is the raw result of one API lookup, before link building.
type Metadata struct {
	ID              string
	Title           string
	Channel         string
	PostDate        string
	ViewCount       int64
	DurationSeconds int
}

// Square brackets would terminate the Markdown link text early.
var markdownSafe = strings.NewReplacer("[", "(", "]", ")")

// Enrich combines a pending record with its metadata, building the
// canonical youtu.be URL and both Markdown link forms.
func Enrich(p Pending, md Metadata) Record {
	shortURL := "https://youtu.be/" + md.ID
	if p.Timestamp != "" {
		shortURL += "?t=" + p.Timestamp
	}

	safeTitle := markdownSafe.Replace(md.Title)
	duration := FormatDuration(md.DurationSeconds)

	return Record{
		Pending: p,
		Meta: &Enriched{
			Title:        md.Title,
			Channel:      md.Channel,
			PostDate:     md.PostDate,
			ViewCount:    md.ViewCount,
			Duration:     duration,
			ShortURL:     shortURL,
			MarkdownLink: "[" + safeTitle + "](" + shortURL + ")",
			ExtendedLink: "[" + safeTitle + " (" + duration + ")](" + shortURL + ") - " + md.PostDate,
		},
	}
}
