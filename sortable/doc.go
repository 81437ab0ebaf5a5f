// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with the sorting engine when the
// caller works in terms of interfaces rather than built-in ordered types.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Float], [Byte], and [String].
//
// The Sortable interface extends [github.com/amp-labs/lvt/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
//	values := []sortable.Int{42, 10, 25}
//	_ = sorting.SortSortable(values, sorting.Merge, compare.Ascending)
//	// values: 10, 25, 42
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// LessThan must be a strict ordering: x.LessThan(x) is false for every x.
// The sorting algorithms rely on that to terminate on runs of equal elements.
package sortable
