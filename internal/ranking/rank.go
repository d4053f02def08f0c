// Package ranking orders a batch of scored candidates for a job, assigns
// discrete tiers from configurable thresholds, and breaks ties
// deterministically.
package ranking

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/meher4567/intellimatch/internal/explain"
	"github.com/meher4567/intellimatch/internal/scoring"
	"github.com/meher4567/intellimatch/internal/types"
)

// CandidateFailure is an error-tagged entry for one candidate whose input
// was rejected. Failures ride alongside successes so one bad candidate
// never aborts the batch.
type CandidateFailure struct {
	CandidateID string `json:"candidate_id"`
	Error       string `json:"error"`
}

// RankResult is the complete outcome of ranking one batch against one job.
type RankResult struct {
	JobID    string              `json:"job_id"`
	Matches  []types.RankedMatch `json:"matches"`
	Failures []CandidateFailure  `json:"failures,omitempty"`
}

// Ranker ranks candidate batches. It holds only read-only collaborators and
// is safe for concurrent use.
type Ranker struct {
	scorer      *scoring.Scorer
	explainer   *explain.Explainer
	thresholds  Thresholds
	parallelism int
}

// New creates a ranker. Invalid tier thresholds fail here, never during a
// rank call.
func New(scorer *scoring.Scorer, thresholds Thresholds) (*Ranker, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{
		scorer:      scorer,
		explainer:   explain.New(scorer),
		thresholds:  thresholds,
		parallelism: runtime.GOMAXPROCS(0),
	}, nil
}

// Rank scores every candidate against the job, independently and in
// parallel, then sorts descending by composite score with ties broken by
// the skills sub-score and then candidate ID ascending. An empty candidate
// list returns an empty result. Cancellation via ctx aborts the whole batch:
// ranking is all-or-nothing, partial results are never returned as final.
func (r *Ranker) Rank(ctx context.Context, candidates []types.Candidate, job *types.JobRequirement) (*RankResult, error) {
	matches := make([]*types.RankedMatch, len(candidates))
	failures := make([]*CandidateFailure, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i := range candidates {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidate := &candidates[i]
			breakdown, err := r.scorer.Score(candidate, job)
			if err != nil {
				// Input errors are per-candidate outcomes, not batch
				// failures.
				failures[i] = &CandidateFailure{CandidateID: candidate.ID, Error: err.Error()}
				return nil
			}
			matches[i] = &types.RankedMatch{
				CandidateID:    candidate.ID,
				CompositeScore: scoring.Composite(breakdown, job.Weights),
				Breakdown:      breakdown,
				Explanation:    r.explainer.Explain(breakdown, job, candidate),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &RankResult{JobID: job.ID, Matches: make([]types.RankedMatch, 0, len(candidates))}
	for i := range candidates {
		switch {
		case matches[i] != nil:
			match := *matches[i]
			match.Tier = r.thresholds.TierFor(match.CompositeScore)
			result.Matches = append(result.Matches, match)
		case failures[i] != nil:
			result.Failures = append(result.Failures, *failures[i])
		}
	}

	sort.Slice(result.Matches, func(i, j int) bool {
		a, b := result.Matches[i], result.Matches[j]
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		if a.Breakdown.Skills != b.Breakdown.Skills {
			return a.Breakdown.Skills > b.Breakdown.Skills
		}
		return a.CandidateID < b.CandidateID
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].CandidateID < result.Failures[j].CandidateID
	})

	return result, nil
}
