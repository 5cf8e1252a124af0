// Package input reads company name lists for batch enrichment.
package input

import (
	"bufio"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ReadCompanies reads one company name per line from the file at path.
// Lines are trimmed; blanks and single-character names are dropped with a
// warning. A missing or unreadable file is an error, an empty list is not.
func ReadCompanies(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "input: open %s", path)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if len(name) <= 1 {
			zap.L().Warn("skipping invalid company name",
				zap.String("name", name),
				zap.Int("line", lineNo),
			)
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "input: read %s", path)
	}
	return names, nil
}
