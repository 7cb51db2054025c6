package pipeline

import (
	"bufio"
	"fmt"
	"os"

	clonedetecterrors "github.com/standardbeagle/clonedetect/internal/errors"
	"github.com/standardbeagle/clonedetect/internal/types"
)

// sinkBacklog bounds the number of pending pairs buffered between the
// parallel query workers and the single writer goroutine. Workers block on
// Emit once the backlog fills, applying backpressure instead of growing
// memory unboundedly on a corpus that produces clone pairs faster than disk
// I/O can absorb them.
const sinkBacklog = 4096

// pairSink is the pair file's single writer. Emit is safe to call
// concurrently; writes happen serialized on the internal goroutine.
type pairSink struct {
	file   *os.File
	writer *bufio.Writer
	pairs  chan types.ClonePair
	done   chan error
}

func newPairSink(path string) (*pairSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, clonedetecterrors.NewIOError("create pair file", err)
	}

	s := &pairSink{
		file:   f,
		writer: bufio.NewWriter(f),
		pairs:  make(chan types.ClonePair, sinkBacklog),
		done:   make(chan error, 1),
	}

	go s.run()
	return s, nil
}

func (s *pairSink) run() {
	for pair := range s.pairs {
		line := formatPair(pair)
		if _, err := s.writer.WriteString(line); err != nil {
			// Drain remaining sends so Emit callers don't deadlock, then
			// report the failure once Close is called.
			for range s.pairs {
			}
			s.done <- clonedetecterrors.NewIOError("write pair file", err)
			return
		}
	}
	s.done <- nil
}

func formatPair(p types.ClonePair) string {
	if p.HasLCSSim {
		return fmt.Sprintf("%d,%d,%d,%d\n", p.ID1, p.ID2, p.NGramSim, p.LCSSim)
	}
	return fmt.Sprintf("%d,%d,%d\n", p.ID1, p.ID2, p.NGramSim)
}

// Emit enqueues an accepted pair, blocking if the backlog is full.
func (s *pairSink) Emit(pair types.ClonePair) {
	s.pairs <- pair
}

// Close signals no further pairs will be emitted, waits for the writer
// goroutine to flush and drain, and closes the underlying file.
func (s *pairSink) Close() error {
	close(s.pairs)
	writeErr := <-s.done

	flushErr := s.writer.Flush()
	closeErr := s.file.Close()

	if writeErr != nil {
		return writeErr
	}
	if flushErr != nil {
		return clonedetecterrors.NewIOError("flush pair file", flushErr)
	}
	if closeErr != nil {
		return clonedetecterrors.NewIOError("close pair file", closeErr)
	}
	return nil
}
