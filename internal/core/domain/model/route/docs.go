// Package route contains the Route aggregate: a courier-assigned, ordered
// sequence of delivery orders with aggregate distance and time estimates.
//
// The route exclusively owns its ordered membership list (order identifiers
// plus the matching human-readable stops). Orders hold a denormalized
// back-reference that the application layer keeps consistent with this list.
package route
