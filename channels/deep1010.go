package channels

import "fmt"

// Deep 10-10 pool sizes.
const (
	Deep1010EEGSlots   = 77
	Deep1010EOGSlots   = 4
	Deep1010RefSlots   = 3
	Deep1010ExtraSlots = 5
	Deep1010Len        = Deep1010EEGSlots + Deep1010EOGSlots + Deep1010RefSlots + 1 + Deep1010ExtraSlots
)

// deep1010Names lists the 10-10 scalp positions front to back, left to right
// within each line. T3/T4/T5/T6 are the older names of T7/T8/P7/P8 and keep
// their own slots so recordings using either convention map unchanged.
var deep1010Names = []string{
	"NZ",
	"FP1", "FPZ", "FP2",
	"AF7", "AF3", "AFZ", "AF4", "AF8",
	"F9", "F7", "F5", "F3", "F1", "FZ", "F2", "F4", "F6", "F8", "F10",
	"FT9", "FT7", "FC5", "FC3", "FC1", "FCZ", "FC2", "FC4", "FC6", "FT8", "FT10",
	"T9", "T7", "T3", "C5", "C3", "C1", "CZ", "C2", "C4", "C6", "T4", "T8", "T10",
	"TP9", "TP7", "CP5", "CP3", "CP1", "CPZ", "CP2", "CP4", "CP6", "TP8", "TP10",
	"P9", "P7", "T5", "P5", "P3", "P1", "PZ", "P2", "P4", "P6", "T6", "P8", "P10",
	"PO7", "PO3", "POZ", "PO4", "PO8",
	"O1", "OZ", "O2",
	"IZ",
}

var deep1010 = buildDeep1010()

func buildDeep1010() *Scheme {
	slots := make([]Slot, 0, Deep1010Len)
	for _, n := range deep1010Names {
		slots = append(slots, Slot{Name: n, Category: CategoryEEG})
	}
	for _, n := range []string{"VEOGL", "VEOGR", "HEOGL", "HEOGR"} {
		slots = append(slots, Slot{Name: n, Category: CategoryEOG})
	}
	for _, n := range []string{"A1", "A2", "REF"} {
		slots = append(slots, Slot{Name: n, Category: CategoryReference})
	}
	slots = append(slots, Slot{Name: "SCALE", Category: CategoryScale})
	for i := 1; i <= Deep1010ExtraSlots; i++ {
		slots = append(slots, Slot{Name: fmt.Sprintf("EX%d", i), Category: CategoryExtra})
	}

	s, err := NewScheme(slots, WithStrictPool(CategoryEEG))
	if err != nil || s.Len() != Deep1010Len {
		panic(fmt.Sprintf("channels: Deep1010 listing is inconsistent: %v", err))
	}

	return s
}

// Deep1010 returns the process-wide Deep 10-10 scheme. Its EEG pool is strict:
// scalp channels only ever land on their named position.
// An EEG channel with an unknown name therefore goes to the next free EX slot,
// not the next unused EEG slot that the positional rule would pick.
func Deep1010() *Scheme { return deep1010 }
