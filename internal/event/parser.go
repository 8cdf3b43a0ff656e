package event

import (
	"os"
	"strconv"
	"strings"

	"github.com/livp123/evplot/pkg/errors"
)

// ParseLine parses one input line of the form "<kind>, <timestamp>".
// The separator must occur exactly once and the timestamp field must be an
// integer. lineNo is 1-based and only used for error context.
func ParseLine(lineNo int, line string) (Record, error) {
	parts := strings.Split(line, Separator)
	if len(parts) != 2 {
		return Record{}, errors.NewLineError(lineNo, line)
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Record{}, errors.NewTimestampError(lineNo, parts[1])
	}

	return Record{Kind: parts[0], Timestamp: ts}, nil
}

// ParseAll parses a whole input blob into records, preserving line order.
// The content is whitespace-trimmed before splitting; blank content yields
// no records. The first malformed line aborts the parse.
func ParseAll(content string) ([]Record, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}

	lines := strings.Split(trimmed, "\n")
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		rec, err := ParseLine(i+1, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseFile reads the whole file into memory and parses it with ParseAll.
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileError(path, err)
	}
	return ParseAll(string(data))
}
