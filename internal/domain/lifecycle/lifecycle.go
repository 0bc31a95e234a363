// Package lifecycle holds shared start/stop budgets for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook that talks to the network.
const DefaultTimeout = 10 * time.Second
