package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

type frontmatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

var delimiter = []byte("---")

// splitFrontmatter separates the optional YAML header from the markdown body.
func splitFrontmatter(raw []byte) (frontmatter, []byte, error) {
	var fm frontmatter

	if !bytes.HasPrefix(raw, delimiter) {
		return fm, raw, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(raw, delimiter), "\r\n")
	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return fm, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	if header := rest[:end]; len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &fm); err != nil {
			return fm, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := rest[end+len(delimiter):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))
	return fm, body, nil
}
