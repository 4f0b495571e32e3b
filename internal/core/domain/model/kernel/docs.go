// Package kernel provides core domain primitives shared by the catalog, cart,
// order and route models.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money helpers: validation and cent rounding over shopspring/decimal amounts
//
// These primitives enforce domain invariants so that aggregates built on top of
// them never hold a zero identifier or a negative price.
package kernel
