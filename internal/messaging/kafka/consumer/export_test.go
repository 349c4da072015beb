package consumer

import "time"

// SetRetryBackoff shortens the store retry delay for tests.
func SetRetryBackoff(t interface{ Cleanup(func()) }, d time.Duration) {
	prevInitial, prevMax := initialRetryBackoff, maxRetryBackoff
	initialRetryBackoff, maxRetryBackoff = d, d
	t.Cleanup(func() {
		initialRetryBackoff, maxRetryBackoff = prevInitial, prevMax
	})
}
