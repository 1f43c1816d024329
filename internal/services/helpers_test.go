package services

import (
	"fmt"
	"time"

	"github.com/renato0307/appdeck/internal/adapters/random"
	"github.com/renato0307/appdeck/internal/adapters/storage"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// sequentialIDs yields prefix+"id-1", prefix+"id-2", ...
func sequentialIDs() IDGenerator {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%sid-%d", prefix, n)
	}
}

func testOptions(extra ...Option) []Option {
	return append([]Option{
		WithClock(fixedClock),
		WithIDGenerator(sequentialIDs()),
		WithRandomSource(random.NewFixed(0.5)),
	}, extra...)
}

func newMemoryStore() *storage.MemoryStore {
	return storage.NewMemoryStore()
}
