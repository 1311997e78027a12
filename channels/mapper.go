package channels

import (
	"fmt"
	"log"
	"strings"

	"github.com/katalvlaran/deep1010/matrix"
)

// UnmappedPolicy decides what Map does with a channel that fits no slot.
type UnmappedPolicy int

const (
	// UnmappedWarn drops the channel and reports a Warning.
	UnmappedWarn UnmappedPolicy = iota
	// UnmappedFail aborts Map with ErrUnmappable.
	UnmappedFail
)

// String returns "warn" or "fail".
func (p UnmappedPolicy) String() string {
	if p == UnmappedFail {
		return "fail"
	}

	return "warn"
}

// ParseUnmappedPolicy accepts "warn" or "fail" (case-insensitive, empty means warn).
func ParseUnmappedPolicy(s string) (UnmappedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn":
		return UnmappedWarn, nil
	case "fail":
		return UnmappedFail, nil
	default:
		return UnmappedWarn, fmt.Errorf("ParseUnmappedPolicy: %q: %w", s, ErrConfiguration)
	}
}

// Warning describes a source channel Map did not place.
type Warning struct {
	Index   int
	Channel Channel
	Reason  string
}

// String renders a one-line diagnostic.
func (w Warning) String() string {
	return fmt.Sprintf("channel %d (%s) dropped: %s", w.Index, w.Channel, w.Reason)
}

// Reporter receives mapping diagnostics.
type Reporter func(Warning)

// LogReporter writes w through the standard logger.
func LogReporter(w Warning) { log.Printf("channels: %s", w) }

type mapOptions struct {
	policy      UnmappedPolicy
	reporter    Reporter
	excludeStim bool
}

// MapOption configures Map.
type MapOption func(*mapOptions)

// WithUnmappedPolicy sets the handling of channels that fit no slot.
func WithUnmappedPolicy(p UnmappedPolicy) MapOption {
	return func(o *mapOptions) { o.policy = p }
}

// WithReporter routes warnings to r. A nil r silences them.
func WithReporter(r Reporter) MapOption {
	return func(o *mapOptions) { o.reporter = r }
}

// WithExcludeStim controls whether stimulus channels are skipped (default true).
// Skipped channels get all-zero weight rows and are not reported.
func WithExcludeStim(on bool) MapOption {
	return func(o *mapOptions) { o.excludeStim = on }
}

// Mapping is the static projection of one source layout onto a scheme.
// It is immutable and safe for concurrent use.
type Mapping struct {
	scheme   *Scheme
	sources  Layout
	weights  *matrix.Dense // [sources × slots]
	project  *matrix.Dense // weightsᵀ, [slots × sources]
	slotOf   []int         // -1 when unmapped
	contrib  [][]int
	warnings []Warning
}

// Map assigns every source channel of layout to at most one slot of scheme.
//
// Stage 1 places channels whose resolved name is a slot of their category's
// pool, in input order. Stage 2 walks the remaining channels in input order:
// a non-strict pool hands out its next free slot, anything else takes the
// next free overflow slot. A channel left over is unmapped. Several channels
// resolving to the same name share the slot; the weight matrix columns are
// normalized to sum to 1, so shared slots hold the average.
//
// Errors:
//   - ErrConfiguration: empty layout or nil scheme.
//   - ErrUnmappable: a channel fits nowhere under UnmappedFail.
func Map(layout Layout, scheme *Scheme, opts ...MapOption) (*Mapping, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("Map: empty layout: %w", ErrConfiguration)
	}
	if scheme == nil {
		return nil, fmt.Errorf("Map: nil scheme: %w", ErrConfiguration)
	}
	o := mapOptions{policy: UnmappedWarn, reporter: LogReporter, excludeStim: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n, m := len(layout), scheme.Len()
	mp := &Mapping{
		scheme:  scheme,
		sources: layout.Clone(),
		slotOf:  make([]int, n),
		contrib: make([][]int, m),
	}
	for i := range mp.slotOf {
		mp.slotOf[i] = -1
	}
	assign := func(src, slot int) {
		mp.slotOf[src] = slot
		mp.contrib[slot] = append(mp.contrib[slot], src)
	}

	skip := make([]bool, n)
	for i, ch := range layout {
		if ch.Type == Stim && o.excludeStim {
			skip[i] = true
			continue
		}
		c := CategoryOf(ch.Type)
		if j, ok := scheme.Index(scheme.resolveName(c, ch.Name)); ok && scheme.slots[j].Category == c {
			assign(i, j)
		}
	}

	nextFree := func(c Category) int {
		for _, j := range scheme.pools[c] {
			if len(mp.contrib[j]) == 0 {
				return j
			}
		}

		return -1
	}
	for i, ch := range layout {
		if skip[i] || mp.slotOf[i] >= 0 {
			continue
		}
		c := CategoryOf(ch.Type)
		j := -1
		if !scheme.strict[c] {
			j = nextFree(c)
		}
		if j < 0 && c != CategoryExtra {
			j = nextFree(CategoryExtra)
		}
		if j >= 0 {
			assign(i, j)
			continue
		}

		w := Warning{Index: i, Channel: ch, Reason: "no free slot in the " + c.String() + " or extra pool"}
		if o.policy == UnmappedFail {
			return nil, fmt.Errorf("Map: %s: %w", w, ErrUnmappable)
		}
		mp.warnings = append(mp.warnings, w)
		if o.reporter != nil {
			o.reporter(w)
		}
	}

	var err error
	if mp.weights, err = matrix.NewDense(n, m); err != nil {
		return nil, fmt.Errorf("Map: %w", err)
	}
	for j, srcs := range mp.contrib {
		w := 1 / float64(len(srcs))
		for _, i := range srcs {
			_ = mp.weights.Set(i, j, w)
		}
	}
	tr, err := matrix.Transpose(mp.weights)
	if err != nil {
		return nil, fmt.Errorf("Map: %w", err)
	}
	mp.project = tr.(*matrix.Dense)

	return mp, nil
}

// Scheme returns the target scheme.
func (mp *Mapping) Scheme() *Scheme { return mp.scheme }

// Sources returns a copy of the source layout.
func (mp *Mapping) Sources() Layout { return mp.sources.Clone() }

// Weights returns a copy of the [sources × slots] weight matrix.
func (mp *Mapping) Weights() *matrix.Dense { return mp.weights.CloneDense() }

// SlotOf returns the slot source channel i was placed in.
func (mp *Mapping) SlotOf(i int) (int, bool) {
	if i < 0 || i >= len(mp.slotOf) || mp.slotOf[i] < 0 {
		return -1, false
	}

	return mp.slotOf[i], true
}

// Contributors returns the source indices averaged into slot j.
func (mp *Mapping) Contributors(j int) []int {
	if j < 0 || j >= len(mp.contrib) {
		return nil
	}
	out := make([]int, len(mp.contrib[j]))
	copy(out, mp.contrib[j])

	return out
}

// Used reports, per slot, whether any source channel feeds it.
func (mp *Mapping) Used() []bool {
	out := make([]bool, len(mp.contrib))
	for j, srcs := range mp.contrib {
		out[j] = len(srcs) > 0
	}

	return out
}

// UsedIndices returns the fed slots of category c, in slot order.
func (mp *Mapping) UsedIndices(c Category) []int {
	var out []int
	for _, j := range mp.scheme.Indices(c) {
		if len(mp.contrib[j]) > 0 {
			out = append(out, j)
		}
	}

	return out
}

// Warnings returns the diagnostics collected while mapping.
func (mp *Mapping) Warnings() []Warning {
	out := make([]Warning, len(mp.warnings))
	copy(out, mp.warnings)

	return out
}

// Unmapped returns the names of source channels placed nowhere, stimulus
// channels included.
func (mp *Mapping) Unmapped() []string {
	var out []string
	for i, j := range mp.slotOf {
		if j < 0 {
			out = append(out, mp.sources[i].Name)
		}
	}

	return out
}

// Apply projects a [sources × T] tensor into a fresh [slots × T] tensor.
// Errors: ErrShapeMismatch when x has the wrong number of rows.
func (mp *Mapping) Apply(x *matrix.Dense) (*matrix.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("Mapping.Apply: %w", matrix.ErrNilMatrix)
	}
	if x.Rows() != len(mp.sources) {
		return nil, fmt.Errorf("Mapping.Apply: %d rows for %d channels: %w", x.Rows(), len(mp.sources), ErrShapeMismatch)
	}
	out, err := matrix.Mul(mp.project, x)
	if err != nil {
		return nil, fmt.Errorf("Mapping.Apply: %w", err)
	}

	return out.(*matrix.Dense), nil
}

// Layout returns the projected layout: one channel per slot, named after its
// contributors joined by "-" (empty when unused), typed by slot category.
func (mp *Mapping) Layout() Layout {
	out := make(Layout, len(mp.contrib))
	names := make([]string, 0, 4)
	for j, srcs := range mp.contrib {
		names = names[:0]
		for _, i := range srcs {
			names = append(names, mp.sources[i].Name)
		}
		out[j] = Channel{Name: strings.Join(names, "-"), Type: mp.scheme.slots[j].Category.Type()}
	}

	return out
}
