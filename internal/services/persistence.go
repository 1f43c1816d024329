package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

// LoadCollection reads the collection stored under key.
// A missing key yields fallback(). Unreadable data or a newer schema version
// also yield fallback(), after the stored bytes are copied to a backup key.
// Entries that fail to decode, fail validate or repeat an earlier ID are
// dropped one by one; the untouched payload is backed up first so the next
// write cannot lose them. The result is never nil.
func LoadCollection[T domain.Identifiable](
	ctx context.Context,
	store ports.CollectionStore,
	key string,
	fallback func() []T,
	validate func(T) error,
) []T {
	useFallback := func() []T {
		items := fallback()
		if items == nil {
			items = []T{}
		}
		return items
	}

	data, version, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			logging.Logger.Debug("Collection not stored yet, using defaults", "key", key)
		} else {
			logging.Logger.Warn("Failed to read collection, using defaults", "key", key, "error", err)
		}
		return useFallback()
	}

	if version > domain.SchemaVersion {
		logging.Logger.Warn("Collection written by a newer appdeck, using defaults",
			"key", key,
			"stored_version", version,
			"supported_version", domain.SchemaVersion)
		backupCollection(ctx, store, key, data, version)
		return useFallback()
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.Logger.Warn("Malformed collection, using defaults", "key", key, "error", err)
		backupCollection(ctx, store, key, data, version)
		return useFallback()
	}

	items := make([]T, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	dropped := 0
	for i, raw := range entries {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logging.Logger.Warn("Dropping undecodable entry", "key", key, "index", i, "error", err)
			dropped++
			continue
		}
		if validate != nil {
			if err := validate(item); err != nil {
				logging.Logger.Warn("Dropping invalid entry", "key", key, "index", i, "id", item.GetID(), "error", err)
				dropped++
				continue
			}
		}
		if seen[item.GetID()] {
			logging.Logger.Warn("Dropping entry with duplicate id", "key", key, "index", i, "id", item.GetID())
			dropped++
			continue
		}
		seen[item.GetID()] = true
		items = append(items, item)
	}

	if dropped > 0 {
		backupCollection(ctx, store, key, data, version)
		if len(items) == 0 {
			logging.Logger.Warn("No valid entries left, using defaults", "key", key, "dropped", dropped)
			return useFallback()
		}
	}

	logging.Logger.Debug("Collection loaded", "key", key, "count", len(items), "dropped", dropped, "version", version)
	return items
}

// BackupKey names the copy of key taken at t, e.g. apps.backup-20250102T030405Z
func BackupKey(key string, t time.Time) string {
	return key + ".backup-" + t.UTC().Format("20060102T150405Z")
}

// backupCollection copies a payload that is about to be replaced to a backup key
func backupCollection(ctx context.Context, store ports.CollectionWriter, key string, data []byte, version int) {
	backup := BackupKey(key, time.Now())
	if err := store.Put(ctx, backup, data, version); err != nil {
		logging.Logger.Error("Failed to back up collection", "key", key, "backup", backup, "error", err)
		return
	}
	logging.Logger.Warn("Stored collection backed up", "key", key, "backup", backup)
}

// SaveCollection writes the whole collection under key, tagged with the current schema version
func SaveCollection[T any](ctx context.Context, store ports.CollectionWriter, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := store.Put(ctx, key, data, domain.SchemaVersion); err != nil {
		logging.Logger.Error("Failed to save collection", "key", key, "error", err)
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	logging.Logger.Debug("Collection saved", "key", key, "count", len(items))
	return nil
}

// validateTodo checks one main todo
func validateTodo(t domain.TodoItem) error {
	if t.ID == "" {
		return fmt.Errorf("todo %q has no id", t.Text)
	}
	return nil
}
