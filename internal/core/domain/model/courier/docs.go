// Package courier contains the courier read model: a user with the courier
// role, the vehicle they drive, and their work-area assignment.
//
// The workflow never scores couriers itself — suitability ranking comes from
// the optimization backend as a non-binding advisory. This model only
// carries what the operator needs to pick a courier.
package courier
