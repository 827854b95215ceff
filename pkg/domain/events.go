package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventBlockStart EventType = "block_start"
	EventBlockDone  EventType = "block_done"
)

// BlockEvent is emitted around the read-out of every block.
type BlockEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Block     string        `json:"block"`
	Mode      BlockMode     `json:"mode"`
	Length    int           `json:"length"`
	Emitted   int           `json:"emitted,omitempty"`
	Skipped   int           `json:"skipped,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Hooks defines callbacks for pipeline observability.
type Hooks struct {
	OnBlockStart func(context.Context, *BlockEvent)
	OnBlockDone  func(context.Context, *BlockEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnBlockStart: chain(h.OnBlockStart, other.OnBlockStart),
		OnBlockDone:  chain(h.OnBlockDone, other.OnBlockDone),
	}
}

func chain(a, b func(context.Context, *BlockEvent)) func(context.Context, *BlockEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *BlockEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
