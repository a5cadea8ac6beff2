package dataset

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"tuicomplete/internal/domain"
)

// fileFormat is the on-disk layout:
//
//	[[candidate]]
//	text = "Alabama"
//	value = "AL"
type fileFormat struct {
	Candidates []struct {
		Text  string `toml:"text"`
		Value any    `toml:"value"`
	} `toml:"candidate"`
}

// LoadFile reads a dataset from a TOML file. A candidate without a value
// uses its text as the value.
func LoadFile(path string) (domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	ds := make(domain.Dataset, 0, len(f.Candidates))
	for i, c := range f.Candidates {
		if c.Text == "" {
			return nil, fmt.Errorf("dataset %s: candidate %d has no text", path, i)
		}
		value := c.Value
		if value == nil {
			value = c.Text
		}
		ds = append(ds, domain.Candidate{Text: c.Text, Value: value})
	}
	return ds, nil
}
