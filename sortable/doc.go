// Package sortable defines the ordering contract used by the red-black tree and
// provides wrapper types for the key types the tree is most often used with.
//
// # Overview
//
// A [Sortable] type can report equality and strict less-than against another value
// of the same type. Together these must describe a total order: for any a and b exactly
// one of a.LessThan(b), b.LessThan(a) or a.Equals(b) holds. The tree never asks for
// anything else, so a custom key only needs these two methods.
//
// Ready-made keys: [Int], [Int64], [Uint32], [String] and [NaturalString]. The last one
// orders strings the way people read them ("item2" before "item10").
//
// # Custom keys
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool { return v == other }
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// # Thread Safety
//
// The wrapper types are plain values and safe to share. Containers keyed by them carry
// their own concurrency rules.
package sortable
