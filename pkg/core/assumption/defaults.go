package assumption

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// LoadDefaults reads the per-year default assumptions from an HJSON file.
// HJSON is used so the defaults file can carry inline commentary about
// where each figure comes from.
func LoadDefaults(path string) (*YearSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var years YearSet
	if err := hjson.Unmarshal(data, &years); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}
	return &years, nil
}
