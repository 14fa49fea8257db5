// Package assignment contains the DeliveryAssignment aggregate: the binding
// of one order to one rider for delivery, with its own lifecycle that stays
// synchronized with the order's status.
//
// The lifecycle is a six-state machine (assigned, picked_up, in_transit,
// delivered, failed, returned). Transition validation comes in two policies:
// the permissive default accepts any valid target status and derives side
// effects from the target alone, tolerating out-of-order reports from the
// field (a rider may confirm delivery without the app ever recording pickup);
// the strict policy enforces the forward-only graph. Stage timestamps are set
// exactly once, the first time their status is reached, and never overwritten.
package assignment
