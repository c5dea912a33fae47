// Package batch combines multiple independent results.
//
// Highlights:
// - Combine2/3/4: all-or-nothing grouping into an ordered tuple, first
//   failure (lowest index) wins
// - Combine2Lazy/Combine3Lazy: supplier-based variants that never evaluate
//   inputs after an earlier failure
// - Sequence: collection variant of Combine, stops at the first failure
// - Traverse: full partition, collects every failure in input order
// - Partition: raw success/failure split underlying Traverse
package batch
