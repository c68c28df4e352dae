// Package internal holds small helpers shared by the ytx command.
package internal

import (
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyViewCount returns a view count with the digit grouping of the
// user's locale, e.g. 1234567 -> "1,234,567" under en_US.
func PrettyViewCount(views int64) string {
	return message.NewPrinter(userLocale()).Sprintf("%d", views)
}

func userLocale() language.Tag {
	locale := os.Getenv("LC_ALL")

	if locale == "" {
		locale = os.Getenv("LC_MESSAGES")
	}

	if locale == "" {
		locale = os.Getenv("LANG")
	}

	if locale == "" {
		locale = "en_US.UTF-8"
	}

	tag, err := language.Parse(locale)

	if err != nil {
		// Locale strings with encoding suffixes ("en_US.UTF-8") don't
		// parse as BCP 47 tags.
		return language.English
	}

	return tag
}
