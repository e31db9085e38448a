// Package compare provides semantic, type-checked three-way comparison of Go values.
//
// # Overview
//
// [Compare] replaces ad-hoc use of < and == on values of unknown type. Every call
// either resolves to a comparator that understands the operands' semantics, or
// fails with a typed error instead of producing a meaningless answer:
//
//	compare.Compare(1, 1.0)                // Equal, nil
//	compare.Compare(dateA, dateB)          // ordered chronologically
//	compare.Compare(dateA, nil)            // *errors.TypeError
//	compare.Compare(nil, dateA)            // *errors.NoImplementationError
//
// Resolution always looks at the left operand first:
//
//   - Predeclared integers and floats form one numeric kind and compare by exact
//     magnitude with each other. string and []byte form the byte-string kind.
//     Both kinds are handled by a fast kernel that never consults the registry.
//   - Any other type must have a comparator in the registry, and the right operand
//     must have exactly the same type.
//   - Values implementing [Composite] (see the tuple package) are ordered element by
//     element.
//   - Everything else is reported with a NoImplementationError.
//
// # Registering types
//
// Built-in registrations cover time.Time, time.Duration, uuid.UUID, netip.Addr,
// semantic versions and the math/big numbers. User types opt in once, usually
// from an init function:
//
//	func init() {
//	    compare.MustDerive(compare.Using[Event]{Fields: []string{"Date", "ID"}})
//	    compare.MustDerive(compare.Using[Money]{Func: Money.Cmp})
//	}
//
// Declarations are validated immediately; a bad field name is reported by
// [Derive], never by a later comparison.
//
// # Thread Safety
//
// Comparisons read an immutable snapshot of the registry and are safe for
// concurrent use. Registration is expected to happen during initialization.
package compare
