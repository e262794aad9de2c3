package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// rawRecord mirrors one entry of the YAML resource.
type rawRecord struct {
	ID     string   `yaml:"id"`
	Emojis []string `yaml:"emojis"`
}

// Load parses a catalog resource into records, preserving source order.
// The source order is taken to be display order. A record with an
// identifier that does not map onto a known category, or with an empty
// emoji list, rejects the whole load.
func Load(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	return parse(data)
}

// LoadFile loads a catalog from a file on disk.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

// LoadDefault parses the embedded catalog shipped with the binary.
func LoadDefault() ([]Record, error) {
	return parse(defaultCatalog)
}

func parse(data []byte) ([]Record, error) {
	var raw []rawRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrMalformedCatalog)
	}

	records := make([]Record, 0, len(raw))
	for _, rr := range raw {
		t, err := ParseType(rr.ID)
		if err != nil {
			return nil, err
		}
		if len(rr.Emojis) == 0 {
			return nil, fmt.Errorf("%w: category %q has no emojis", ErrMalformedCatalog, rr.ID)
		}
		records = append(records, Record{Type: t, EmojiIDs: rr.Emojis})
	}
	return records, nil
}
