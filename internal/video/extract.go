package video

import (
	"net/url"
	"regexp"
	"strings"
)

// youtubeRe matches the four supported URL shapes: watch, embed,
// shorts, and the youtu.be short link. Scheme and host match
// case-insensitively, paths and video ids do not. Trailing query
// strings are captured because the t parameter is read downstream.
var youtubeRe = regexp.MustCompile(
	`(?i:https?://(?:www\.)?youtube\.com)/(?:watch\?v=|embed/|shorts/)[\w-]+(?:[&?]\S*)?` +
		`|(?i:https?://(?:www\.)?youtu\.be)/[\w-]+(?:\?\S*)?`)

// ExtractLinks returns the unique YouTube URLs embedded in a block of
// free text, in first-seen order.
func ExtractLinks(text string) []string {
	if text == "" {
		return nil
	}

	var links []string
	seen := make(map[string]struct{})

	for _, m := range youtubeRe.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		links = append(links, m)
	}

	return links
}

// Resolve classifies a single URL and returns its video id plus the
// start offset from the t query parameter. URLs that don't fit any
// known YouTube shape, or that fail to parse at all, come back empty.
func Resolve(rawURL string) (id, timestamp string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ""
	}

	host := strings.ToLower(u.Host)
	q := u.Query()

	switch {
	case strings.HasPrefix(u.Path, "/embed/"):
		id = strings.TrimPrefix(u.Path, "/embed/")
	case strings.HasPrefix(u.Path, "/shorts/"):
		id = strings.TrimPrefix(u.Path, "/shorts/")
	case strings.Contains(host, "youtu.be"):
		id = strings.TrimPrefix(u.Path, "/")
	case strings.Contains(host, "youtube.com"):
		id = q.Get("v")
	}

	if id == "" {
		return "", ""
	}

	// Offsets usually arrive as "90s". The unit goes; anything else in
	// the value passes through untouched.
	if ts := q.Get("t"); ts != "" {
		timestamp = strings.TrimRight(ts, "s")
	}

	return id, timestamp
}
