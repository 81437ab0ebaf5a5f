// Package sorting implements six interchangeable in-place sorting strategies
// over generic slices, each usable ascending or descending and row-wise on
// matrices.
//
// What:
//
//   - Bubble, Insertion, Selection, Shell, Quick (Hoare partition) and Merge.
//   - Every strategy sorts in place and satisfies the same contract: the result
//     is a permutation of the input that is monotonic in the requested direction.
//   - 2D variants sort each row independently; rows are never reordered.
//
// Stability:
//
//   - Bubble, Insertion and Merge keep equal elements in input order.
//   - Selection, Shell and Quick make no such promise.
//
// Complexity:
//
//   - Bubble:    O(n²), O(n) on already sorted input.
//   - Insertion: O(n²), O(n) on already sorted input.
//   - Selection: O(n²) in every case.
//   - Shell:     between O(n log n) and O(n²) with the halving gap sequence.
//   - Quick:     O(n log n) average, O(n²) worst; O(log n) stack.
//   - Merge:     O(n log n) in every case; O(n) auxiliary buffer.
//
// Ordering:
//
//   - Built-in ordered types use a compare.Direction.
//   - Anything else supplies a compare.LessFunc or implements sortable.Sortable.
//   - A less function must be strict (less(x, x) == false); ties are what keeps
//     the partition and merge loops finite.
//
// Errors:
//
//   - ErrUnknownStrategy: a Strategy value or name outside the six above.
package sorting
