// Package channels maps heterogeneous recording channel sets onto a fixed
// canonical layout.
//
// 🚀 What is the Deep 10-10 scheme?
//
//	A single 90-slot layout every dataset is projected onto, so a model sees
//	the same row for the same scalp position regardless of the amplifier:
//	  • 77 EEG slots following the international 10-10 system (NZ … IZ,
//	    keeping the legacy T3/T4/T5/T6 labels as their own slots)
//	  • 4 EOG slots (VEOGL, VEOGR, HEOGL, HEOGR)
//	  • 3 reference slots (A1, A2, REF)
//	  • 1 SCALE slot carrying a per-trial dynamic range indicator
//	  • 5 EX overflow slots for anything that fits nowhere else
//
// ✨ Key features:
//   - Map builds an immutable [source × slot] linear Mapping once per dataset
//   - per-category name heuristics ("EEG Fp1-REF" → FP1, "HEOG-L" → HEOGL)
//   - positional fallback for non-strict pools and overflow into EX slots
//   - unmappable channels are reported as Warnings (or abort, by policy)
//   - custom schemes via NewScheme for smaller or experimental layouts
//
// ⚙️ Usage:
//
//	layout := channels.Layout{
//	  {Name: "Fp1", Type: channels.EEG},
//	  {Name: "Fp2", Type: channels.EEG},
//	  {Name: "VEOG", Type: channels.EOG},
//	}
//	m, err := channels.Map(layout, channels.Deep1010())
//	projected, err := m.Apply(trial) // [90 × samples]
//
// Aliasing:
//
//	When several source channels resolve to the same slot (duplicate electrode
//	names), the slot column is normalized to sum to 1: the projected row is the
//	average of its contributors, which keeps the amplitude scale stable.
package channels
