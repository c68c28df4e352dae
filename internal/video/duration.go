package video

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`^PT(\d+H)?(\d+M)?(\d+S)?`)

// ParseISODuration converts a YouTube ISO-8601 duration such as
// "PT1H2M3S" into total seconds. Strings that don't match the PT form
// (the API reports "P0D" for live streams) yield zero.
func ParseISODuration(d string) int {
	m := isoDurationRe.FindStringSubmatch(d)
	if m == nil {
		return 0
	}
	return component(m[1])*3600 + component(m[2])*60 + component(m[3])
}

func component(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s[:len(s)-1])
	return n
}

// FormatDuration renders total seconds as H:MM:SS, or M:SS for videos
// under an hour. Only the trailing components are zero-padded.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
