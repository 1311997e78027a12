package channels

import (
	"fmt"
	"strings"
)

// Category is the pool a canonical slot belongs to.
type Category int

const (
	// CategoryEEG holds scalp positions.
	CategoryEEG Category = iota
	// CategoryEOG holds ocular slots.
	CategoryEOG
	// CategoryReference holds reference slots.
	CategoryReference
	// CategoryScale holds the dynamic range indicator (at most one slot).
	CategoryScale
	// CategoryExtra holds overflow slots.
	CategoryExtra

	numCategories
)

var categoryNames = [...]string{"eeg", "eog", "ref", "scale", "extra"}

// String returns the lower-case category label.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// Type returns the channel type reported for slots of this category.
func (c Category) Type() Type {
	switch c {
	case CategoryEEG:
		return EEG
	case CategoryEOG:
		return EOG
	case CategoryReference:
		return Reference
	case CategoryScale:
		return Scale
	default:
		return Extra
	}
}

// CategoryOf returns the pool a source channel of type t competes for.
// Anything that is not EEG, EOG or a reference lands in the overflow pool.
func CategoryOf(t Type) Category {
	switch t {
	case EEG:
		return CategoryEEG
	case EOG:
		return CategoryEOG
	case Reference:
		return CategoryReference
	default:
		return CategoryExtra
	}
}

// Slot is one named canonical position.
type Slot struct {
	Name     string
	Category Category
}

// Scheme is an immutable ordered set of canonical slots. Slot index defines
// the row of a projected tensor. A Scheme is safe for concurrent reads.
type Scheme struct {
	slots    []Slot
	index    map[string]int
	pools    [numCategories][]int
	strict   [numCategories]bool
	eegChars map[rune]struct{}
}

// SchemeOption configures NewScheme.
type SchemeOption func(*Scheme)

// WithStrictPool makes a pool name-only: a source channel whose resolved name
// is not one of the pool's slots never takes a free slot positionally and
// falls through to the overflow pool instead.
func WithStrictPool(c Category) SchemeOption {
	return func(s *Scheme) {
		if c >= 0 && c < numCategories {
			s.strict[c] = true
		}
	}
}

// NewScheme validates slots and builds the category pools in slot order.
// Slot names are matched case-insensitively and stored upper-case.
//
// Errors:
//   - ErrConfiguration: no slots, empty or duplicate name, unknown category,
//     more than one scale slot.
func NewScheme(slots []Slot, opts ...SchemeOption) (*Scheme, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("NewScheme: no slots: %w", ErrConfiguration)
	}
	s := &Scheme{
		slots:    make([]Slot, len(slots)),
		index:    make(map[string]int, len(slots)),
		eegChars: make(map[rune]struct{}),
	}
	for i, sl := range slots {
		name := strings.ToUpper(strings.TrimSpace(sl.Name))
		if name == "" {
			return nil, fmt.Errorf("NewScheme: slot %d has no name: %w", i, ErrConfiguration)
		}
		if sl.Category < 0 || sl.Category >= numCategories {
			return nil, fmt.Errorf("NewScheme: slot %s: %s: %w", name, sl.Category, ErrConfiguration)
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("NewScheme: duplicate slot %s: %w", name, ErrConfiguration)
		}
		s.slots[i] = Slot{Name: name, Category: sl.Category}
		s.index[name] = i
		s.pools[sl.Category] = append(s.pools[sl.Category], i)
		if sl.Category == CategoryEEG {
			for _, r := range name {
				s.eegChars[r] = struct{}{}
			}
		}
	}
	if len(s.pools[CategoryScale]) > 1 {
		return nil, fmt.Errorf("NewScheme: %d scale slots: %w", len(s.pools[CategoryScale]), ErrConfiguration)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// Len returns the number of slots.
func (s *Scheme) Len() int { return len(s.slots) }

// Slot returns slot i.
func (s *Scheme) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(s.slots) {
		return Slot{}, false
	}

	return s.slots[i], true
}

// Names returns the slot names in order.
func (s *Scheme) Names() []string {
	out := make([]string, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.Name
	}

	return out
}

// Index looks a slot up by name, case-insensitively.
func (s *Scheme) Index(name string) (int, bool) {
	i, ok := s.index[strings.ToUpper(strings.TrimSpace(name))]

	return i, ok
}

// Indices returns a copy of the slot indices of category c, in slot order.
func (s *Scheme) Indices(c Category) []int {
	if c < 0 || c >= numCategories {
		return nil
	}
	out := make([]int, len(s.pools[c]))
	copy(out, s.pools[c])

	return out
}

// ScaleIndex returns the scale indicator slot, if the scheme has one.
func (s *Scheme) ScaleIndex() (int, bool) {
	if len(s.pools[CategoryScale]) == 0 {
		return -1, false
	}

	return s.pools[CategoryScale][0], true
}

// Strict reports whether pool c is name-only.
func (s *Scheme) Strict(c Category) bool {
	if c < 0 || c >= numCategories {
		return false
	}

	return s.strict[c]
}

// Layout returns the scheme as a channel layout (slot names, category types).
func (s *Scheme) Layout() Layout {
	out := make(Layout, len(s.slots))
	for i, sl := range s.slots {
		out[i] = Channel{Name: sl.Name, Type: sl.Category.Type()}
	}

	return out
}
