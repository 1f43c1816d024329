package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

// StoreFactory opens the collection store living in an appdeck home directory
type StoreFactory func(homePath string) (ports.CollectionStore, error)

// MigrationService moves dashboard collections between APPDECK_HOME directories
type MigrationService struct {
	storeFactory StoreFactory
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(storeFactory StoreFactory) *MigrationService {
	return &MigrationService{storeFactory: storeFactory}
}

// MoveBetweenHomesParams contains parameters for moving collections between homes
type MoveBetweenHomesParams struct {
	DestHome   string
	Keys       []string // empty means every tracked collection
	KeepSource bool     // copy instead of move
	Overwrite  bool     // replace collections already present at the destination
	SourceHome string
}

// MoveBetweenHomesResult contains the result of a move
type MoveBetweenHomesResult struct {
	Moved   []string
	Skipped []string
}

// trackedCollections are the keys appdeck knows how to read
var trackedCollections = []string{domain.CollectionApps, domain.CollectionMainTodos, domain.CollectionIdeas}

// MoveBetweenHomes copies the selected collections from one home to another
// and, unless KeepSource is set, deletes them from the source afterwards.
// The raw stored JSON moves untouched together with its schema version.
func (s *MigrationService) MoveBetweenHomes(
	ctx context.Context,
	params MoveBetweenHomesParams,
) (*MoveBetweenHomesResult, error) {
	if params.SourceHome == params.DestHome {
		return nil, fmt.Errorf("source and destination are the same: %s", params.SourceHome)
	}

	keys := params.Keys
	if len(keys) == 0 {
		keys = trackedCollections
	}
	for _, k := range keys {
		if !slices.Contains(trackedCollections, k) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, k)
		}
	}

	logging.Logger.Info("Moving collections between APPDECK_HOME directories",
		"keys", keys,
		"from", params.SourceHome,
		"to", params.DestHome)

	source, err := s.storeFactory(params.SourceHome)
	if err != nil {
		logging.Logger.Error("Failed to open source store", "path", params.SourceHome, "error", err)
		return nil, fmt.Errorf("failed to open source database: %w", err)
	}
	defer source.Close()

	dest, err := s.storeFactory(params.DestHome)
	if err != nil {
		logging.Logger.Error("Failed to open destination store", "path", params.DestHome, "error", err)
		return nil, fmt.Errorf("failed to open destination database: %w", err)
	}
	defer dest.Close()

	existing, err := dest.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list destination collections: %w", err)
	}

	result := &MoveBetweenHomesResult{}
	for _, key := range keys {
		data, version, err := source.Get(ctx, key)
		if errors.Is(err, domain.ErrCollectionNotFound) {
			logging.Logger.Debug("Collection missing in source, skipping", "key", key)
			result.Skipped = append(result.Skipped, key)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", key, err)
		}

		if slices.Contains(existing, key) && !params.Overwrite {
			logging.Logger.Warn("Collection exists at destination, skipping", "key", key)
			result.Skipped = append(result.Skipped, key)
			continue
		}

		if err := dest.Put(ctx, key, data, version); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", key, err)
		}

		if !params.KeepSource {
			if err := source.Delete(ctx, key); err != nil {
				logging.Logger.Warn("Failed to delete collection from source", "key", key, "error", err)
			}
		}

		result.Moved = append(result.Moved, key)
		logging.Logger.Info("Collection moved", "key", key)
	}

	return result, nil
}
