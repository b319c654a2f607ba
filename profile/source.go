// Package profile loads user profiles from a tabular source and renders them
// as prompt-ready summary blocks.
package profile

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Source is a read-only, in-memory view of the profile workbook, keyed by
// user id. The workbook is read once at process start.
type Source struct {
	rows map[string]map[string]string
}

// LoadExcel reads the first sheet of the workbook. The header row names the
// attributes; a "user_id" column is required and becomes the key.
func LoadExcel(path string) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("profile workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	src := &Source{rows: make(map[string]map[string]string)}
	if len(rows) == 0 {
		return src, nil
	}

	header := rows[0]
	idCol := -1
	for i, name := range header {
		if strings.TrimSpace(name) == "user_id" {
			idCol = i
			break
		}
	}
	if idCol == -1 {
		return nil, fmt.Errorf("profile workbook %s has no user_id column", path)
	}

	for _, row := range rows[1:] {
		if idCol >= len(row) {
			continue
		}
		userID := strings.TrimSpace(row[idCol])
		if userID == "" {
			continue
		}

		attrs := make(map[string]string)
		for i, cell := range row {
			if i == idCol || i >= len(header) {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			attrs[strings.TrimSpace(header[i])] = cell
		}
		src.rows[userID] = attrs
	}

	return src, nil
}

// Lookup returns the attribute map for a user. Unknown users get an empty map.
func (s *Source) Lookup(userID string) map[string]string {
	attrs, ok := s.rows[userID]
	if !ok {
		return map[string]string{}
	}
	return attrs
}

// Len reports how many profiles were loaded.
func (s *Source) Len() int {
	return len(s.rows)
}
