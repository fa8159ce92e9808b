// Package services contains stateless domain services that operate across
// aggregates.
//
// MembershipDiff is the synchronization step behind every membership-changing
// route operation: because the two backends share no transaction or cascade,
// the orders to release and to claim are computed as a pure function first
// and the I/O calls are derived from its result.
package services
