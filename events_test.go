// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"testing"
	"time"
)

func TestEventQueuePreservesOrder(t *testing.T) {
	q := newEventQueue(4)
	defer q.close()

	const n = 200
	for i := 0; i < n; i++ {
		q.post(UploadProgress{Percent: i})
	}

	for i := 0; i < n; i++ {
		select {
		case ev := <-q.out:
			progress, ok := ev.(UploadProgress)
			if !ok {
				t.Fatalf("got %T, want UploadProgress", ev)
			}
			if progress.Percent != i {
				t.Fatalf("event %d has percent %d", i, progress.Percent)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestEventQueuePostNeverBlocks(t *testing.T) {
	q := newEventQueue(1)
	defer q.close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			q.post(ErrorOccurred{Message: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("post blocked with a full out channel")
	}

	for i := 0; i < 100; i++ {
		select {
		case <-q.out:
		case <-time.After(time.Second):
			t.Fatalf("missing event %d", i)
		}
	}
}

func TestEventQueueCloseDrainsPending(t *testing.T) {
	q := newEventQueue(1)

	q.post(UploadProgress{Percent: 1})
	q.post(UploadProgress{Percent: 2})
	q.post(UploadProgress{Percent: 3})
	q.close()

	var got []int
	for ev := range q.out {
		got = append(got, ev.(UploadProgress).Percent)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("drained %v, want [1 2 3]", got)
	}
}

func TestEventQueuePostAfterCloseIsDropped(t *testing.T) {
	q := newEventQueue(1)
	q.close()
	q.post(UploadProgress{Percent: 1})

	for range q.out {
		t.Fatal("event delivered after close")
	}
}
