package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}
