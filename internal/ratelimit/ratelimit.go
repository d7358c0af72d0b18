// Package ratelimit provides durable fixed-window admission counters keyed
// by a bucket + client address identifier. It backs the contact-form
// submission quota.
package ratelimit

import (
	"context"
	"time"
)

// Contact-form bucket policy: at most MaxPerWindow admitted submissions per
// identifier per Window.
const (
	ContactBucket = "contact"
	Window        = time.Hour
	MaxPerWindow  = 5
)

// Store admits or rejects an action for an identifier under a fixed
// window-and-threshold policy.
//
// Allow returns true when the action is admitted. The read-check-increment
// must be atomic per identifier: two concurrent calls racing for the last
// slot must admit exactly one. A store that cannot be reached returns an
// error; callers must treat that as a failure, never as an admission.
type Store interface {
	Allow(ctx context.Context, identifier string, window time.Duration, max int) (bool, error)
}
