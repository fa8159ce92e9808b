// Package order contains the Order aggregate and its route-status state
// machine.
//
// An order belongs to at most one active route. The route membership list is
// the source of truth; the order's route reference and status are a
// denormalization that the application layer synchronizes explicitly after
// every membership change, because no foreign-key cascade exists between the
// two backends.
package order
