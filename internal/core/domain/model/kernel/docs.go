// Package kernel contains the shared value objects of the domain model:
// backend-assigned identifiers and distances.
//
// Distance exists because the optimization backend reports kilometers while
// the persistence backend stores meters; every value is converted to meters
// exactly once, at the boundary, and stays in meters afterwards.
package kernel
