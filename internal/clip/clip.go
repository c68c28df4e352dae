// Package clip reads the system clipboard.
package clip

import "golang.design/x/clipboard"

// Text returns the current clipboard contents as text. Init is cheap
// to call repeatedly; it only probes the platform once.
func Text() (string, error) {
	if err := clipboard.Init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
