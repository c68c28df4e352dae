// Package onepassword retrieves secrets through the 1Password CLI.
package onepassword

import (
	"encoding/json"
	"fmt"
	"os/exec"
)

type item struct {
	Fields []struct {
		Label string `json:"label"`
		Value string `json:"value"`
	} `json:"fields"`
}

// Credential fetches the item with the given identifier via `op` and
// returns its "credential" field, the label 1Password uses for API
// keys.
func Credential(identifier string) (string, error) {
	return Field(identifier, "credential")
}

// Field fetches one labeled field from a 1Password item.
func Field(identifier, label string) (string, error) {
	out, err := exec.Command("op", "item", "get", identifier, "--format", "json").Output()
	if err != nil {
		return "", fmt.Errorf("op item get %s: %w", identifier, err)
	}
	return fieldFromItem(out, label)
}

func fieldFromItem(data []byte, label string) (string, error) {
	var it item
	if err := json.Unmarshal(data, &it); err != nil {
		return "", fmt.Errorf("parse op item: %w", err)
	}

	for _, f := range it.Fields {
		if f.Label == label {
			return f.Value, nil
		}
	}

	return "", fmt.Errorf("no field labeled %q", label)
}
