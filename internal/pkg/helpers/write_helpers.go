package helpers

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/kvstore"
)

// Now is the single clock used when stamping entity timestamps
func Now() time.Time {
	return time.Now().UTC()
}

// CombineWrites merges the outcomes of consecutive collection writes into
// one result: persisted only when every write persisted, carrying the
// first failure otherwise. Used when one operation touches more than one
// storage key, for example a profile edit that re-syncs denormalized
// copies.
func CombineWrites(results ...kvstore.WriteResult) kvstore.WriteResult {
	combined := kvstore.WriteResult{Persisted: true}
	for _, r := range results {
		if !r.Persisted {
			combined.Persisted = false
			if combined.Err == nil {
				combined.Err = r.Err
			}
		}
	}
	return combined
}
