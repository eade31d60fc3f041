package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/napolitain/microciv/internal/game"
)

const (
	// requestTimeout bounds how long a caller blocks on the decision service
	// before substituting the safe default.
	requestTimeout = 10 * time.Second
	// requestQueueSize bounds the request channel. A full queue degrades to
	// the default immediately instead of blocking the caller.
	requestQueueSize = 8

	defaultAction = "end"
)

// Decider is the slow, possibly-remote decision service behind a Bridge. The
// worker goroutine calls it strictly one request at a time, so
// implementations may keep unsynchronized conversational state.
type Decider interface {
	DecideAction(ctx context.Context, view game.Snapshot, civIndex int) (string, error)
	DecidePopupInput(ctx context.Context, view game.Snapshot, civIndex int, popup game.PopupView) (string, error)
}

type requestKind int

const (
	reqAction requestKind = iota
	reqPopupInput
)

type request struct {
	kind  requestKind
	view  game.Snapshot
	civ   int
	popup game.PopupView
	reply chan response
}

type response struct {
	text string
	err  error
}

// Bridge exposes the synchronous game.Agent interface on top of a Decider.
// One dedicated worker goroutine owns the decider (and whatever conversation
// it holds); requests cross to it over a bounded channel and come back on
// per-request one-shot channels, so no shared memory crosses the boundary and
// requests are serviced in submission order. Transport failures and timeouts
// are absorbed: the caller always gets a usable answer.
type Bridge struct {
	decider  Decider
	requests chan request
	timeout  time.Duration
}

// NewBridge wraps a decider. Call Start before use.
func NewBridge(d Decider) *Bridge {
	return &Bridge{
		decider:  d,
		requests: make(chan request, requestQueueSize),
		timeout:  requestTimeout,
	}
}

// Start launches the worker goroutine. It runs until ctx is cancelled.
func (b *Bridge) Start(ctx context.Context) {
	go b.worker(ctx)
}

func (b *Bridge) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("agent bridge worker stopped")
			return
		case req := <-b.requests:
			var text string
			var err error
			switch req.kind {
			case reqAction:
				text, err = b.decider.DecideAction(ctx, req.view, req.civ)
			case reqPopupInput:
				text, err = b.decider.DecidePopupInput(ctx, req.view, req.civ, req.popup)
			}
			// Reply channels are buffered: if the caller already timed out
			// and left, this late response is simply dropped.
			req.reply <- response{text: text, err: err}
		}
	}
}

// SelectAction asks the decision service for the next command, blocking up to
// the fixed timeout. Any failure degrades to "end" so the turn still
// terminates.
func (b *Bridge) SelectAction(view game.Snapshot, civIndex int) (string, bool) {
	text, ok := b.roundTrip(request{kind: reqAction, view: view, civ: civIndex})
	if !ok || text == "" {
		return defaultAction, true
	}
	return text, true
}

// SelectPopupInput asks the decision service to answer an open popup. Any
// failure degrades to empty input, which the popup machine treats as a
// harmless no-op.
func (b *Bridge) SelectPopupInput(view game.Snapshot, civIndex int, popup game.PopupView) string {
	text, _ := b.roundTrip(request{kind: reqPopupInput, view: view, civ: civIndex, popup: popup})
	return text
}

// roundTrip submits one request and waits for its reply. The second return is
// false when the answer had to be defaulted.
func (b *Bridge) roundTrip(req request) (string, bool) {
	req.reply = make(chan response, 1)

	select {
	case b.requests <- req:
	default:
		slog.Warn("agent bridge queue full, using default", "kind", req.kind)
		return "", false
	}

	select {
	case resp := <-req.reply:
		if resp.err != nil {
			slog.Warn("agent bridge request failed, using default", "kind", req.kind, "error", resp.err)
			return "", false
		}
		return resp.text, true
	case <-time.After(b.timeout):
		slog.Warn("agent bridge request timed out, using default", "kind", req.kind, "timeout", b.timeout)
		return "", false
	}
}
