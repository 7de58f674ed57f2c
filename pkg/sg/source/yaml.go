package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/sg/pkg/sg/types"
)

// YAMLSource loads a result set from a fixture file of the form
//
//	results:
//	  - symbol: NVDA
//	    ...
//
// The file is re-read on every Load.
type YAMLSource struct {
	Path string
}

func (s YAMLSource) Load(ctx context.Context) (types.ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRetrievalFailed, s.Path, err)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (types.ResultSet, error) {
	var doc struct {
		Results types.ResultSet `yaml:"results"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if len(doc.Results) == 0 {
		return nil, fmt.Errorf("%w: no results", ErrInvalidData)
	}
	for i, r := range doc.Results {
		if strings.TrimSpace(r.Symbol) == "" {
			return nil, fmt.Errorf("%w: result %d has no symbol", ErrInvalidData, i+1)
		}
	}
	return doc.Results, nil
}
