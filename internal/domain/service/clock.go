package service

import "time"

// Clock abstracts the current time so sweeps and pricing can be driven in tests.
type Clock interface {
	Now() time.Time
}
