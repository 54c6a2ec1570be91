// Package kernel provides core domain primitives shared by the parcels domain
// model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Address: a value object for a recipient's postal address
//   - Email: a value object for a syntactically validated email address
//
// These primitives enforce domain invariants at construction time and are
// immutable, making them safe for concurrent use. The zero value of each type
// is invalid; instances must be created through the provided constructors.
package kernel
