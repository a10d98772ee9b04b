// FILE: lixenwraith/kvconfig/parse.go
package kvconfig

import (
	"bufio"
	"io"
	"strings"
)

// MaxLineSize is the longest line the parser accepts, in bytes.
const MaxLineSize = 1 << 20

const (
	commentPrefix = "#"
	separator     = "="
)

// Parse reads key=value lines from r into a map.
// Blank lines and lines starting with '#' are skipped. Each remaining line is
// split on its first '=', both halves are trimmed, and later keys overwrite
// earlier ones. The first line without '=' aborts parsing with a
// *MalformedLineError.
func Parse(r io.Reader) (map[string]string, error) {
	return parseLines(r, nil)
}

// parseLines is Parse with an optional handler for malformed lines.
// With a nil handler the first malformed line is returned as an error,
// otherwise the handler is called and the line is dropped.
func parseLines(r io.Reader, onMalformed func(*MalformedLineError)) (map[string]string, error) {
	data := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		key, value, ok := strings.Cut(line, separator)
		if !ok {
			malformed := &MalformedLineError{Line: lineNo, Text: line}
			if onMalformed == nil {
				return nil, malformed
			}
			onMalformed(malformed)
			continue
		}

		data[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}
