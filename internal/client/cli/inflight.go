package cli

import (
	"errors"
	"sync/atomic"
)

var ErrBusy = errors.New("another request is still in progress")

// inflight rejects a submission while another one is pending.
type inflight struct {
	busy atomic.Bool
}

func (f *inflight) do(fn func() error) error {
	if !f.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer f.busy.Store(false)
	return fn()
}

func (f *inflight) Busy() bool {
	return f.busy.Load()
}
