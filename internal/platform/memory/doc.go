// Package memory provides in-memory implementations of the store
// interfaces. Entities live in mutex-guarded maps and are defensively
// copied on the way in and out, so callers can never mutate stored state
// through a returned pointer. The backend keeps nothing across restarts
// and is used for tests and storage-less deployments.
//
// All lookups iterate in ascending ID order, so attribute lookups return
// a deterministic first match.
package memory
