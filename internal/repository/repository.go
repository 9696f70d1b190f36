// Package repository implements the query layer over the relational
// store. Absence of a record is a normal outcome reported as ErrNotFound,
// distinct from store failures which are returned verbatim.
package repository

import "errors"

var (
	// ErrNotFound means the lookup (id, optionally scoped to a game)
	// matched no record.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a uniqueness constraint was violated, e.g. a
	// duplicate name.
	ErrConflict = errors.New("record already exists")

	// ErrAlreadySolved means the (user, keypoint) pair is already
	// recorded and the replay policy rejects repeats.
	ErrAlreadySolved = errors.New("keypoint already solved by user")
)

// ReplayPolicy decides what happens when a user solves the same keypoint
// twice.
type ReplayPolicy string

const (
	// ReplayIgnore treats a repeated solve as a no-op: the existing
	// record is returned and no points are awarded again.
	ReplayIgnore ReplayPolicy = "ignore"

	// ReplayReject reports a repeated solve as ErrAlreadySolved.
	ReplayReject ReplayPolicy = "reject"
)

// ParseReplayPolicy maps a configuration string to a ReplayPolicy,
// defaulting to ReplayIgnore.
func ParseReplayPolicy(s string) ReplayPolicy {
	if s == string(ReplayReject) {
		return ReplayReject
	}
	return ReplayIgnore
}
