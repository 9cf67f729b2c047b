package specfile

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	variantkiterrors "github.com/variantkit/variantkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a spec document from disk, validates it, and returns the
// resulting model. Callers receive either a document whose every
// component spec is safe to resolve against, or an error; no partially
// valid document ever escapes.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, variantkiterrors.NewParseError(path, 0, err)
	}

	return parseBytes(path, data)
}

func parseBytes(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, variantkiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
