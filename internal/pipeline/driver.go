// Package pipeline implements the driver: the partition loop and its
// parallel fan-out over query sequences, wiring together the inverted
// index, location, filtration and LCS verification stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/standardbeagle/clonedetect/internal/config"
	clonedetecterrors "github.com/standardbeagle/clonedetect/internal/errors"
	"github.com/standardbeagle/clonedetect/internal/index"
	"github.com/standardbeagle/clonedetect/internal/types"
	"github.com/standardbeagle/clonedetect/internal/verify"
)

// Run drives the full partition loop over corpus and writes accepted
// pairs to cfg.PairsOut. It returns an *errors.DetectorError on any fatal
// condition: an unopenable pair file (IO_ERROR), a degenerate partition
// size (CONFIG_ERROR), or an external interrupt (INTERRUPTED).
func Run(ctx context.Context, cfg *config.Config, corpus []types.TokenSequence) error {
	total := len(corpus)
	if total == 0 {
		sink, err := newPairSink(cfg.PairsOut)
		if err != nil {
			return err
		}
		return sink.Close()
	}

	partitionSize := ceilDiv(total, cfg.PartitionCount)
	if partitionSize <= 0 {
		return clonedetecterrors.NewConfigError("compute partition size",
			errPartitionSize(total, cfg.PartitionCount))
	}

	sink, err := newPairSink(cfg.PairsOut)
	if err != nil {
		return err
	}

	for s := 0; s < total; s += partitionSize {
		if err := ctx.Err(); err != nil {
			_ = sink.Close()
			return clonedetecterrors.NewInterrupted("pipeline partition loop")
		}

		idx := index.Build(corpus, types.SequenceID(s), partitionSize, cfg.N)
		if err := processPartition(ctx, cfg, corpus, idx, s, total, sink); err != nil {
			_ = sink.Close()
			return err
		}
	}

	return sink.Close()
}

// processPartition fans out over every query id after the partition's
// start, each query locating, filtering and verifying independently
// against the frozen partition index before emitting to the shared sink.
func processPartition(ctx context.Context, cfg *config.Config, corpus []types.TokenSequence, idx *index.InvertedIndex, s, total int, sink *pairSink) error {
	p := pool.New().WithMaxGoroutines(cfg.Threads).WithContext(ctx)

	for q := s + 1; q < total; q++ {
		q := q
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			verifyQuery(cfg, corpus, idx, types.SequenceID(q), sink)
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return clonedetecterrors.NewInterrupted("pipeline query fan-out")
	}
	return nil
}

// verifyQuery locates candidates for one query sequence, applies the
// filtration threshold, then the two-tier verification (fast N-gram
// acceptance, or LCS) before emitting accepted pairs.
func verifyQuery(cfg *config.Config, corpus []types.TokenSequence, idx *index.InvertedIndex, q types.SequenceID, sink *pairSink) {
	query := corpus[q]
	sizeQ := index.QueryNGramCount(len(query.Tokens), cfg.N)
	if sizeQ == 0 {
		return
	}

	candidates := index.Locate(q, query.Tokens, cfg.N, idx)
	for _, cand := range candidates {
		candidate := corpus[cand.ID]
		sizeC := index.QueryNGramCount(len(candidate.Tokens), cfg.N)

		simNGram := verify.NGramSimilarity(cand.Shared, sizeQ, sizeC)
		if !verify.PassesFiltration(simNGram, cfg.FiltrationThreshold) {
			continue
		}

		if verify.PassesFiltration(simNGram, cfg.VerificationThreshold) {
			sink.Emit(types.ClonePair{ID1: cand.ID, ID2: q, NGramSim: simNGram, HasLCSSim: false})
			continue
		}

		lcsLen := verify.LCSLength(query.Tokens, candidate.Tokens)
		simLCS := verify.LCSSimilarity(lcsLen, len(query.Tokens), len(candidate.Tokens))
		if verify.PassesVerification(simLCS, cfg.VerificationThreshold) {
			sink.Emit(types.ClonePair{ID1: cand.ID, ID2: q, NGramSim: simNGram, LCSSim: simLCS, HasLCSSim: true})
		}
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func errPartitionSize(total, partitionCount int) error {
	return fmt.Errorf("partition size computed as non-positive for totalSequences=%d partitionCount=%d", total, partitionCount)
}
