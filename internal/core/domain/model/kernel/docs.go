// Package kernel provides shared value objects for the marketplace domain:
// UUID identifiers, exact integer Money amounts, optional GeoPoint
// coordinates and the caller Actor identity.
//
// All types are immutable value objects created through validating
// constructors; zero values fail Validate. This keeps every aggregate built
// on top of them free of partially-initialized state.
package kernel
