// Package frontmatter provides a parser for metadata stored in a fenced block
// at the top of a command script.
package frontmatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat indicates that the front-matter uses an unsupported format.
var ErrUnsupportedFormat = fmt.Errorf("unsupported format")

// ErrNoFrontMatter indicates that the content began without a front-matter.
var ErrNoFrontMatter = fmt.Errorf("no front-matter")

// ErrBadFrontMatter indicates that the front-matter is incomplete or not decodeable.
var ErrBadFrontMatter = fmt.Errorf("bad front-matter")

// Fence delimits front-matter blocks.
const Fence = "```"

// nextLine splits data after the first newline.
func nextLine(data []byte) (line string, rest []byte, ok bool) {
	if len(data) == 0 {
		return "", nil, false
	}
	before, after, _ := bytes.Cut(data, []byte{'\n'})

	return strings.TrimSuffix(string(before), "\r"), after, true
}

// Decode parses a front-matter at the beginning of data into dest and returns
// the content following the closing fence. Content that does not begin with
// a fence is returned unchanged together with ErrNoFrontMatter.
func Decode(data []byte, dest interface{}) ([]byte, error) {
	first, rest, ok := nextLine(data)
	if !ok || !strings.HasPrefix(first, Fence) {
		return data, ErrNoFrontMatter
	}
	format := strings.TrimSpace(strings.TrimPrefix(first, Fence))
	if format == "" {
		return data, fmt.Errorf("%w: missing format after opening fence", ErrBadFrontMatter)
	}

	var block strings.Builder
	for {
		var line string
		line, rest, ok = nextLine(rest)
		if !ok {
			return data, fmt.Errorf("%w: missing closing fence", ErrBadFrontMatter)
		}
		if strings.TrimSpace(line) == Fence {
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}

	switch format {
	case "json":
		err := json.Unmarshal([]byte(block.String()), dest)
		if err != nil {
			return data, fmt.Errorf("%w: %w", ErrBadFrontMatter, err)
		}
		return rest, nil
	default:
		return data, fmt.Errorf("cannot unmarshal %q front-matter: %w", format, ErrUnsupportedFormat)
	}
}
