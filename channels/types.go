package channels

import (
	"fmt"
	"strings"
)

// Type is the declared kind of a recorded channel.
type Type int

const (
	// Unknown is any type the source metadata does not resolve; mapped like Extra.
	Unknown Type = iota
	// EEG is a scalp electrode.
	EEG
	// EOG is an electro-oculogram channel.
	EOG
	// Reference is an ear clip or amplifier reference.
	Reference
	// Extra is an auxiliary (misc) channel.
	Extra
	// Scale marks the derived dynamic range indicator slot.
	Scale
	// Stim is a trigger/stimulus channel.
	Stim
)

var typeNames = [...]string{"unknown", "eeg", "eog", "ref", "extra", "scale", "stim"}

// String returns the lower-case type label.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}

	return typeNames[t]
}

// typeAliases maps case-insensitive labels to types.
var typeAliases = map[string]Type{
	"eeg":       EEG,
	"eog":       EOG,
	"ref":       Reference,
	"reference": Reference,
	"ear":       Reference,
	"extra":     Extra,
	"misc":      Extra,
	"aux":       Extra,
	"scale":     Scale,
	"stim":      Stim,
	"trigger":   Stim,
}

// ParseType resolves a type label case-insensitively.
// Unrecognized labels resolve to Unknown.
func ParseType(s string) Type {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}

	return Unknown
}

// Channel is one recorded channel as declared by the source metadata.
type Channel struct {
	Name string
	Type Type
}

// String renders "name:type".
func (c Channel) String() string { return c.Name + ":" + c.Type.String() }

// Layout is the ordered channel list of a dataset; order matches tensor rows.
type Layout []Channel

// Names returns the channel names in order.
func (l Layout) Names() []string {
	out := make([]string, len(l))
	for i, ch := range l {
		out[i] = ch.Name
	}

	return out
}

// Clone returns an independent copy.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)

	return out
}

// ParseLayout reads a comma separated "name:type" list, e.g.
// "Fp1:eeg, Fp2:eeg, VEOG:eog". A missing type defaults to EEG.
func ParseLayout(s string) (Layout, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("ParseLayout: empty: %w", ErrConfiguration)
	}
	parts := strings.Split(s, ",")
	out := make(Layout, 0, len(parts))
	for _, p := range parts {
		name, typ, found := strings.Cut(strings.TrimSpace(p), ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("ParseLayout: entry %q has no name: %w", p, ErrConfiguration)
		}
		t := EEG
		if found {
			t = ParseType(typ)
		}
		out = append(out, Channel{Name: name, Type: t})
	}

	return out, nil
}
