package levels

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Grid is a row-major matrix of cell markers. A cell equal to Marker holds
// an enemy; every other value is empty. Rows may have different lengths.
type Grid [][]int

// Marker is the cell value that places an enemy.
const Marker = 1

// Count returns the number of marked cells.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == Marker {
				n++
			}
		}
	}
	return n
}

// ParseCSV parses one row per text line, comma-separated integer fields.
// Blank lines are kept as empty rows so later row numbers are not shifted.
// Any field that is not an integer makes the whole descriptor malformed.
func ParseCSV(data []byte) (Grid, error) {
	var grid Grid

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			grid = append(grid, nil)
			continue
		}

		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", lineNo, i+1, err)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning csv: %w", err)
	}

	// A trailing blank line carries no information
	for len(grid) > 0 && grid[len(grid)-1] == nil {
		grid = grid[:len(grid)-1]
	}
	return grid, nil
}

// YAMLStage represents the YAML structure for a stage file.
type YAMLStage struct {
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

// ParseYAML parses a YAML stage file. The name is optional.
func ParseYAML(data []byte) (string, Grid, error) {
	var ys YAMLStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return "", nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return ys.Name, Grid(ys.Rows), nil
}
