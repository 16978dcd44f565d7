// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic or block on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Wait()

	if got := w.runCount.Load(); got != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", got)
	}
}

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	stopped chan struct{}
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	close(b.stopped)
}

func TestWorkers_Run_DoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &blockingWorker{stopped: make(chan struct{})}
	ws := NewWorkers(w)

	returned := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Run must return while workers are still running")
	}

	cancel()

	waited := make(chan struct{})
	go func() {
		ws.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
	<-w.stopped
}
