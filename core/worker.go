package core

import (
	"context"
	"time"
)

type Worker interface {
	Schedule() string
	Ready(now time.Time) bool
	Execute(ctx context.Context)
}
