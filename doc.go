// Package deep1010 prepares biosignal recordings with heterogeneous channel
// layouts for learning models.
//
// 🚀 What is deep1010?
//
//	A small, dependency-light toolkit that brings together:
//		• Channel mapping: any dataset's channel list → the 90-slot Deep 10-10 scheme
//		• Instance transforms: z-score, fixed-range scaling, padding, interpolation,
//		  random crops, auxiliary masking, EOG artifact injection
//		• Chains: ordered composition with static shape propagation
//		• Reproducible randomness: per-instance and per-worker generators
//
// ✨ Why deep1010?
//
//   - Shape first: every transform predicts its output metadata, so a model can
//     be sized before any data is read
//   - Read-only after construction: share transforms and chains across workers
//   - Explicit randomness: each call takes its own *rand.Rand
//
// Packages:
//
//	matrix/      — row-major Dense instance tensor, statistics, normalization kernels
//	channels/    — channel types, layouts, schemes, Deep1010(), Map
//	transforms/  — Transform contract, concrete transforms, Instance record, Chain
//	rng/         — seeded PCG generators keyed by instance ID or worker
//	config/      — environment / .env settings for the deep1010 command
//	cmd/deep1010 — pipeline planner and shape verifier
//
// Quick example:
//
//	mapping, _ := transforms.NewMappingDeep1010(info)
//	resample, _ := transforms.NewTemporalInterpolation(256)
//	chain, _ := transforms.NewChain(0, mapping, transforms.NewZScore(), resample)
//	md, _ := chain.ResultingMetadata(info.Metadata(0)) // 90 channels × 256 samples
//	y, _ := chain.Apply(trial, rng.ForInstance(seed, id))
package deep1010
