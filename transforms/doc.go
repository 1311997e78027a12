// Package transforms implements per-instance tensor transforms for biosignal
// trials and their composition into chains.
//
// Every Transform carries two views of the same operation:
//
//   - Apply computes the data: a fresh [channels × samples] tensor.
//   - NewChannels, NewSequenceLength and NewSFreq compute the shape metadata the
//     output will have, without touching any tensor.
//
// Both views must agree for every valid input. A Chain folds the data view with
// Apply/ApplyInstance and the metadata view with ResultingMetadata, so a model
// can be sized before the first trial is ever loaded.
//
// Transforms that read or write auxiliary per-instance values (the used-channel
// mask, the label) work on the fixed-schema Instance record and implement
// InstanceTransform. Those that change which fields exist implement
// FieldTransform; NewChain checks the resulting field schema once, at
// construction.
//
// Randomized transforms draw from the *rand.Rand passed to each call. Nothing
// is shared between calls, so one transform value may serve any number of
// goroutines, each with its own generator (see package rng).
//
// Ordering is the caller's responsibility: MaskAuxiliariesDeep1010 placed
// before MappingDeep1010 masks the wrong rows and is not detected.
package transforms
