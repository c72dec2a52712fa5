package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
)

// File loads rows from a text file, one row per line. Blank lines and
// lines starting with '#' are skipped. A line may carry tab-separated
// fields: "title", "id<TAB>title" or "id<TAB>title<TAB>detail".
type File struct {
	Path string
}

// Load implements Loader.
func (f File) Load(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows file: %w", err)
	}

	var rows []Row
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, parseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse rows file: %w", err)
	}
	return rows, nil
}

func parseLine(line string) Row {
	fields := strings.Split(line, "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	switch len(fields) {
	case 1:
		return Row{ID: fields[0], Title: fields[0]}
	case 2:
		return Row{ID: fields[0], Title: fields[1]}
	default:
		return Row{ID: fields[0], Title: fields[1], Detail: strings.Join(fields[2:], " ")}
	}
}
