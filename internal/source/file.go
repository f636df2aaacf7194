package source

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/dm/idxreport/internal/client"
	"github.com/dm/idxreport/internal/model"
)

// DefaultDataFile is the local file read when running in debug mode.
const DefaultDataFile = "indexes.json"

// LoadFile reads a JSON array of cat records from path. The file has the same
// shape as a /_cat/indices?format=json response.
func LoadFile(path string, log *zap.Logger) ([]model.Index, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(FileError, OriginFile, path, err)
	}

	var records []client.IndexInfo
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, newError(ParseError, OriginFile, path, fmt.Errorf("decode %s: %w", path, err))
	}

	indices, err := toIndices(records, time.Time{})
	if err != nil {
		return nil, newError(ParseError, OriginFile, path, err)
	}

	log.Debug("loaded index records from file", zap.String("path", path), zap.Int("records", len(indices)))
	return indices, nil
}
