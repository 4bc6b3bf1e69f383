package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/paintmix/color"
)

// New validates paints and returns a Catalog that preserves their order.
// The input slice is copied; later changes to it do not affect the Catalog.
//
// Implementation:
//   - Stage 1: validate each paint (name, color, weight).
//   - Stage 2: enforce name uniqueness, recording the stable index.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateName, ErrInvalidWeight,
//     color.ErrInvalidColor (wrapped with the paint name).
//
// An empty input is accepted; queries against it report ErrEmptyCatalog.
//
// Complexity: O(n) time and space.
func New(paints []Paint) (*Catalog, error) {
	var (
		n     = len(paints)
		c     = &Catalog{paints: make([]Paint, n), index: make(map[string]int, n)}
		i     int
		p     Paint
		err   error
		found bool
	)
	for i = 0; i < n; i++ {
		p = paints[i]
		if err = validatePaint(p); err != nil {
			return nil, fmt.Errorf("paint #%d %q: %w", i, p.Name, err)
		}
		if _, found = c.index[p.Name]; found {
			return nil, fmt.Errorf("paint #%d %q: %w", i, p.Name, ErrDuplicateName)
		}
		c.index[p.Name] = i
		c.paints[i] = p
	}

	return c, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(paints ...Paint) *Catalog {
	c, err := New(paints)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of paints. A nil Catalog has length 0.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.paints)
}

// At returns the paint at index i. It panics if i is out of range,
// like slice indexing.
func (c *Catalog) At(i int) Paint { return c.paints[i] }

// Paints returns a copy of the paints in catalog order.
func (c *Catalog) Paints() []Paint {
	if c == nil {
		return nil
	}
	out := make([]Paint, len(c.paints))
	copy(out, c.paints)

	return out
}

// Names returns the paint names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, c.Len())
	for i := range out {
		out[i] = c.paints[i].Name
	}

	return out
}

// Lookup finds a paint by name and returns it with its stable index.
func (c *Catalog) Lookup(name string) (Paint, int, bool) {
	if c == nil {
		return Paint{}, -1, false
	}
	i, ok := c.index[name]
	if !ok {
		return Paint{}, -1, false
	}

	return c.paints[i], i, true
}

// Resolve is Lookup for callers that want an error value.
func (c *Catalog) Resolve(name string) (Paint, int, error) {
	p, i, ok := c.Lookup(name)
	if !ok {
		return Paint{}, -1, fmt.Errorf("%q: %w", name, ErrUnknownPaint)
	}

	return p, i, nil
}

// Nearest returns the paint closest to target under metric (Euclidean when
// metric is nil). Ties are broken by catalog order: the first occurrence wins.
//
// Errors:
//   - ErrEmptyCatalog if the catalog holds no paints.
//
// Complexity: O(n).
func (c *Catalog) Nearest(target color.Color, metric color.Metric) (Paint, int, error) {
	if c.Len() == 0 {
		return Paint{}, -1, ErrEmptyCatalog
	}
	if metric == nil {
		metric = color.Euclidean{}
	}

	var (
		best  = 0
		bestD = metric.Distance(target, c.paints[0].Color)
		d     float64
		i     int
	)
	for i = 1; i < len(c.paints); i++ {
		d = metric.Distance(target, c.paints[i].Color)
		if d < bestD { // strict: earlier index keeps ties
			best, bestD = i, d
		}
	}

	return c.paints[best], best, nil
}

// Shortlist returns the indices of the m paints closest to target, ordered
// nearest first with ties broken by catalog index. If m ≥ Len(), every index
// is returned. m ≤ 0 yields nil.
//
// Complexity: O(n log n).
func (c *Catalog) Shortlist(target color.Color, m int, metric color.Metric) []int {
	n := c.Len()
	if m <= 0 || n == 0 {
		return nil
	}
	if metric == nil {
		metric = color.Euclidean{}
	}

	var (
		idx  = make([]int, n)
		dist = make([]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		idx[i] = i
		dist[i] = metric.Distance(target, c.paints[i].Color)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return dist[idx[a]] < dist[idx[b]]
	})
	if m > n {
		m = n
	}

	return idx[:m]
}

// validatePaint checks one record in isolation.
func validatePaint(p Paint) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if err := p.Color.Validate(); err != nil {
		return err
	}
	if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) || p.Weight < 0 {
		return ErrInvalidWeight
	}

	return nil
}
