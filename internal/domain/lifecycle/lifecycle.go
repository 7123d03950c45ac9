// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may spend starting or
// stopping a component.
const DefaultTimeout = 10 * time.Second
