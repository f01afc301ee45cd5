package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cull/internal/processor"
)

func TestDrainUpdatesUnblocksProducer(t *testing.T) {
	// A dead progress display must not stall the batch: a producer pushing
	// far more updates than the channel buffers has to complete once the
	// drain takes over.
	updates := make(chan processor.ProgressUpdate, 64)

	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		for i := 0; i < 500; i++ {
			updates <- processor.ProgressUpdate{ProcessedDelta: 1}
		}
		close(updates)
	}()

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		drainUpdates(updates)
	}()

	select {
	case <-producerDone:
	case <-time.After(5 * time.Second):
		t.Fatal("producer blocked on updates channel")
	}

	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("drain did not observe channel close")
	}

	require.Empty(t, updates)
}
