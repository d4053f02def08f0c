package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meher4567/intellimatch/internal/types"
)

// file is the on-disk shape of a taxonomy document.
type file struct {
	Skills []Skill `json:"skills"`
}

// LoadFile reads a taxonomy JSON document from disk and constructs the
// immutable taxonomy. This happens once at process start; the result is then
// shared read-only across every scoring call.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse constructs a taxonomy from raw JSON.
func Parse(data []byte) (*Taxonomy, error) {
	var doc file
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &types.ConfigError{Message: "failed to parse taxonomy JSON", Cause: err}
	}
	if len(doc.Skills) == 0 {
		return nil, &types.ConfigError{Message: "taxonomy contains no skills"}
	}
	return New(doc.Skills)
}
