// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import "sync"

// Event is the tagged union delivered on Client.Events(). Exactly one
// terminal event is posted per one-shot call; streaming subscriptions post
// zero or more item events plus at most one ErrorOccurred on abnormal end.
//
// Events are delivered in the order they were posted, across all producers.
// The channel is meant to be drained by a single consumer loop (the UI
// thread's equivalent); nothing in this package calls back into consumer
// code from a worker goroutine.
type Event interface {
	event()
}

// ConnStateChanged reports a Ready/NotReady edge from the liveness monitor,
// or the forced NotReady emitted by Disconnect.
type ConnStateChanged struct {
	Connected bool
}

// ErrorOccurred carries failures that are not tied to a specific call
// outcome: stream terminations and dispatch attempts with no session for
// operations whose outcome event has no Result field of its own.
type ErrorOccurred struct {
	Message string
}

// UploadProgress is posted once per integer-percent change during UploadCad.
type UploadProgress struct {
	Percent int
}

// UploadFinished is the terminal outcome of UploadCad.
type UploadFinished struct {
	Result  Result
	ModelID string
}

// TargetsSet is the terminal outcome of SetInspectionTargets.
type TargetsSet struct {
	Result       Result
	TotalTargets uint32
}

// PlanFinished is the terminal outcome of PlanInspection.
type PlanFinished struct {
	Response PlanResponse
}

// PlanFetched is the terminal outcome of GetPlan.
type PlanFetched struct {
	Response GetPlanResponse
}

// InspectionStarted is the terminal outcome of StartInspection.
type InspectionStarted struct {
	Result Result
	TaskID string
}

// ControlFinished is the terminal outcome of Pause/Resume/StopInspection.
// Op is "pause", "resume" or "stop".
type ControlFinished struct {
	Op     string
	Result Result
}

// TaskStatusReceived is the terminal outcome of a GetTaskStatus poll.
type TaskStatusReceived struct {
	Status TaskStatus
}

// SystemStateReceived is one item from the system-state subscription.
type SystemStateReceived struct {
	Status TaskStatus
}

// InspectionEventReceived is one item from the inspection-events subscription.
type InspectionEventReceived struct {
	Event InspectionEvent
}

// NavMapReceived is the terminal outcome of GetNavMap.
type NavMapReceived struct {
	Result Result
	Map    NavMapInfo
}

// CapturesListed is the terminal outcome of ListCaptures.
type CapturesListed struct {
	Result   Result
	Captures []CaptureRecord
}

// MediaDownloaded carries the fully reassembled payload of a DownloadMedia
// stream that completed cleanly.
type MediaDownloaded struct {
	MediaID string
	Data    []byte
}

func (ConnStateChanged) event()        {}
func (ErrorOccurred) event()           {}
func (UploadProgress) event()          {}
func (UploadFinished) event()          {}
func (TargetsSet) event()              {}
func (PlanFinished) event()            {}
func (PlanFetched) event()             {}
func (InspectionStarted) event()       {}
func (ControlFinished) event()         {}
func (TaskStatusReceived) event()      {}
func (SystemStateReceived) event()     {}
func (InspectionEventReceived) event() {}
func (NavMapReceived) event()          {}
func (CapturesListed) event()          {}
func (MediaDownloaded) event()         {}

// eventQueue is the ordered asynchronous hand-off between worker goroutines
// and the consumer. post never blocks the producer: events land in an
// unbounded FIFO under a mutex, and a single pump goroutine moves them to
// the out channel. Per-queue order is total posted order.
type eventQueue struct {
	out  chan Event
	wake chan struct{}

	mu     sync.Mutex
	items  []Event
	closed bool
}

func newEventQueue(depth int) *eventQueue {
	q := &eventQueue{
		out:  make(chan Event, depth),
		wake: make(chan struct{}, 1),
	}
	go q.pump()
	return q
}

// post enqueues ev for delivery. Posting after close is a no-op.
func (q *eventQueue) post(ev Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// close stops intake. Already-posted events are still delivered, then the
// out channel is closed.
func (q *eventQueue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		batch := q.items
		q.items = nil
		closed := q.closed
		q.mu.Unlock()

		for _, ev := range batch {
			q.out <- ev
		}
		if closed {
			return
		}
		if len(batch) == 0 {
			<-q.wake
		}
	}
}
