// Package cache loads captured API responses from the local cache
// directory, eg. api_cache/v3_meets_ID_athletes_20240601_153000.json.
package cache

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/utils"
)

// File is one cached response: the filename keyed to its endpoint, the
// raw bytes for example rendering and the decoded document.
type File struct {
	Name string
	Raw  []byte
	Doc  *jsonapi.Document
}

// Documents extracts the decoded documents from loaded files.
func Documents(files []File) []*jsonapi.Document {
	docs := make([]*jsonapi.Document, 0, len(files))
	for _, file := range files {
		docs = append(docs, file.Doc)
	}
	return docs
}

type Cache struct {
	fs     afero.Fs
	dir    string
	logger *zap.SugaredLogger
}

func New(fs afero.Fs, dir string, logger *zap.SugaredLogger) *Cache {
	return &Cache{fs: fs, dir: dir, logger: logger}
}

func (c *Cache) Exists() (bool, error) {
	return afero.DirExists(c.fs, c.dir)
}

// Athletes loads all cached athlete documents.
func (c *Cache) Athletes() ([]File, error) {
	return c.loadGlob("*athletes*.json")
}

// EventLists loads the cached event list documents. The "_2" matches the
// timestamp year and keeps event detail files ("events_ID_*") out.
func (c *Cache) EventLists() ([]File, error) {
	return c.loadGlob("*events_2*.json")
}

// EventNodes loads the cached event-nodes documents.
func (c *Cache) EventNodes() ([]File, error) {
	return c.loadGlob("*event-nodes*.json")
}

// EventDetails loads the cached per-event detail documents.
func (c *Cache) EventDetails() ([]File, error) {
	return c.loadGlob("*events_ID_*.json")
}

// Meets loads the cached meet documents.
func (c *Cache) Meets() ([]File, error) {
	return c.loadGlob("*meets_ID_2*.json")
}

// All loads every cached document, for the documentation generator.
func (c *Cache) All() ([]File, error) {
	return c.loadGlob("*.json")
}

// loadGlob loads all documents matching the pattern, sorted by filename.
// Malformed files are collected into the returned error but do not stop
// the loading, the caller decides whether to treat them as warnings.
func (c *Cache) loadGlob(pattern string) ([]File, error) {
	paths, err := afero.Glob(c.fs, filepath.Join(c.dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("cannot search cache directory: %w", err)
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	loadErr := utils.NewMultiError()
	for _, path := range paths {
		raw, err := afero.ReadFile(c.fs, path)
		if err != nil {
			loadErr.Add(fmt.Errorf("cannot read \"%s\": %w", path, err))
			continue
		}
		doc, err := jsonapi.ParseDocument(raw)
		if err != nil {
			loadErr.Add(fmt.Errorf("cannot decode \"%s\": %w", path, err))
			continue
		}
		files = append(files, File{Name: filepath.Base(path), Raw: raw, Doc: doc})
	}

	c.logger.Debugf(`Loaded %d cached file(s) for "%s".`, len(files), pattern)
	if loadErr.Len() > 0 {
		loadErr.SetPrefix(fmt.Sprintf("%d cached file(s) skipped", loadErr.Len()))
	}
	return files, loadErr.ErrorOrNil()
}
