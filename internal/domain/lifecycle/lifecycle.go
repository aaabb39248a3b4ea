// Package lifecycle holds shared timing constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (server drain, database close, worker stop).
const DefaultTimeout = 30 * time.Second
