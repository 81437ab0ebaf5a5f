// Package algorithm collects analytic algorithms over generic in-memory
// sequences and matrices.
//
// What:
//
//   - MaxSubarraySum: Kadane's maximum-subarray sum.
//   - FrequencyTable, MostFreqElem, KMostFreqElem: occurrence counting and top-k selection.
//   - FindClosest, ApproxBinSearch: nearest-value lookup in a sorted reference.
//   - IntervalsLength: union length of possibly overlapping intervals.
//   - MaxPairwiseProduct, MaxProductOf3Elems: linear-scan best products.
//   - UniqueElements: values present in exactly one of two sequences.
//   - Tribonacci, Xbonacci: k-term linear recurrences from a seed.
//   - SumOfPolynomials, SumOfMatrices, TransposeMatrix: elementwise arithmetic.
//   - Digits, sequence and matrix reshaping helpers.
//
// Contract:
//
//   - Every function returns a new slice owned by the caller and never keeps or
//     mutates its inputs.
//   - Empty input is valid and yields the zero result.
//   - Preconditions such as sortedness or matching shapes are the caller's job;
//     they are documented per function and not checked on the hot path.
//
// Errors:
//
//   - ErrMalformedInterval: an interval whose start is after its end.
//   - ErrShapeMismatch: a reshape whose element count doesn't fit.
//   - ErrIndexOutOfRange: slice bounds outside the sequence.
package algorithm
