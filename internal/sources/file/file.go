// Package file reads share links from a local text file.
package file

import (
	"fmt"
	"os"

	"apiaccess/internal/link"
	"apiaccess/internal/logger"
	"apiaccess/internal/sources"
)

type FileSource struct{}

func (s *FileSource) Collect(params map[string]interface{}) ([]string, error) {
	path, err := sources.StringParam(params, "path")
	if err != nil {
		return nil, err
	}

	logger.Log.Debugf("Reading links from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return link.Extract(string(data)), nil
}

func init() {
	sources.Register("file", func() sources.Source {
		return &FileSource{}
	})
}
