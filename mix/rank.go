package mix

import (
	"sort"
)

// ranker collects outcomes in generation order and produces the final,
// bounded, deterministically ordered list.
//
// Policy:
//   - Outcomes with a skip reason are counted, never stored.
//   - Candidates above threshold are counted as SkipAboveThreshold.
//   - A candidate whose key was already seen is SkipDuplicate; the earlier
//     one wins because it is earlier in tie-break order.
//   - Seq is assigned on acceptance, so sorting by (Error, Seq) yields
//     ascending error with ties in generation order.
type ranker struct {
	limit     int
	threshold float64

	cands     []Candidate
	seen      map[string]struct{}
	skipped   map[SkipReason]int
	evaluated int
	exact     int // accepted candidates with Error == 0
}

func newRanker(limit int, threshold float64) *ranker {
	return &ranker{
		limit:     limit,
		threshold: threshold,
		seen:      make(map[string]struct{}),
		skipped:   make(map[SkipReason]int),
	}
}

// add records one outcome and returns its final disposition: SkipNone if the
// candidate was kept, otherwise the reason it was dropped.
func (r *ranker) add(o Outcome) SkipReason {
	r.evaluated++
	if o.Reason != SkipNone {
		r.skipped[o.Reason]++
		return o.Reason
	}

	c := o.Candidate
	if c.Error > r.threshold {
		r.skipped[SkipAboveThreshold]++
		return SkipAboveThreshold
	}
	k := c.key()
	if _, dup := r.seen[k]; dup {
		r.skipped[SkipDuplicate]++
		return SkipDuplicate
	}
	r.seen[k] = struct{}{}

	c.Seq = len(r.cands)
	r.cands = append(r.cands, c)
	if c.Error == 0 {
		r.exact++
	}

	return SkipNone
}

// saturated reports that limit exact matches are already held. Every later
// candidate has error ≥ 0 and a larger Seq, so none can enter the top list.
func (r *ranker) saturated() bool {
	return r.exact >= r.limit
}

// top sorts the kept candidates and returns at most limit of them.
//
// Complexity: O(c log c) for c kept candidates.
func (r *ranker) top() []Candidate {
	sort.SliceStable(r.cands, func(i, j int) bool {
		if r.cands[i].Error != r.cands[j].Error {
			return r.cands[i].Error < r.cands[j].Error
		}
		return r.cands[i].Seq < r.cands[j].Seq
	})
	n := len(r.cands)
	if n > r.limit {
		n = r.limit
	}
	out := make([]Candidate, n)
	copy(out, r.cands[:n])

	return out
}
