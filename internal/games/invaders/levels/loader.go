// Package levels reads stage descriptors for the invaders game.
// This package does not depend on the simulation; it only produces marker grids.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strconv"

	"github.com/charmbracelet/log"
)

//go:embed stages
var builtinStages embed.FS

// ErrNotFound is returned when no descriptor file exists for a stage.
var ErrNotFound = errors.New("stage descriptor not found")

// Stage is a parsed stage descriptor.
type Stage struct {
	Number int
	Name   string
	Grid   Grid
	Path   string
}

// Source loads stage descriptors from a file system.
//
// For stage N it looks for inv_formationN.csv, then stageN.yaml, then stageN.yml.
type Source struct {
	fsys   fs.FS
	label  string
	logger *log.Logger
}

// NewDirSource creates a source reading descriptors from a directory on disk.
func NewDirSource(root string, logger *log.Logger) *Source {
	return newSource(os.DirFS(root), root, logger)
}

// NewEmbeddedSource creates a source reading the built-in stages.
func NewEmbeddedSource(logger *log.Logger) *Source {
	sub, err := fs.Sub(builtinStages, "stages")
	if err != nil {
		// Only possible if the embed directive is broken
		panic(fmt.Sprintf("levels: embedded stages: %v", err))
	}
	return newSource(sub, "builtin", logger)
}

// NewFSSource creates a source over an arbitrary file system.
func NewFSSource(fsys fs.FS, label string, logger *log.Logger) *Source {
	return newSource(fsys, label, logger)
}

func newSource(fsys fs.FS, label string, logger *log.Logger) *Source {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Source{fsys: fsys, label: label, logger: logger}
}

// Label describes where the source reads from.
func (s *Source) Label() string {
	return s.label
}

// candidates returns the file names tried for a stage, in order.
func candidates(stage int) []string {
	n := strconv.Itoa(stage)
	return []string{
		"inv_formation" + n + ".csv",
		"stage" + n + ".yaml",
		"stage" + n + ".yml",
	}
}

// Load reads and parses the descriptor for the given stage.
func (s *Source) Load(stage int) (Stage, error) {
	for _, name := range candidates(stage) {
		data, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Stage{}, fmt.Errorf("reading %s: %w", name, err)
		}

		st := Stage{Number: stage, Path: name}
		switch path.Ext(name) {
		case ".csv":
			st.Grid, err = ParseCSV(data)
		default:
			st.Name, st.Grid, err = ParseYAML(data)
		}
		if err != nil {
			return Stage{}, fmt.Errorf("parsing %s: %w", name, err)
		}
		if st.Name == "" {
			st.Name = "Stage " + strconv.Itoa(stage)
		}
		return st, nil
	}
	return Stage{}, fmt.Errorf("stage %d in %s: %w", stage, s.label, ErrNotFound)
}

// Grid returns the marker grid for a stage. Missing or malformed descriptors
// are logged and yield an empty grid.
func (s *Source) Grid(stage int) [][]int {
	st, err := s.Load(stage)
	if err != nil {
		s.logger.Warn("using empty formation", "stage", stage, "source", s.label, "error", err)
		return nil
	}
	s.logger.Debug("stage loaded", "stage", stage, "file", st.Path, "enemies", st.Grid.Count())
	return st.Grid
}

// Catalog loads stages 1..maxStage. Stages that fail to load are returned
// with an empty grid and their error.
func (s *Source) Catalog(maxStage int) ([]Stage, []error) {
	stages := make([]Stage, 0, maxStage)
	var errs []error
	for n := 1; n <= maxStage; n++ {
		st, err := s.Load(n)
		if err != nil {
			errs = append(errs, err)
			st = Stage{Number: n, Name: "Stage " + strconv.Itoa(n)}
		}
		stages = append(stages, st)
	}
	return stages, errs
}
