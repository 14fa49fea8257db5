// Package order holds the dispatch core's projection of a storefront order.
// Orders are created and owned elsewhere; this core reads their existence and
// display fields and writes only the restricted status subset tied to the
// assignment lifecycle: processing, dispatched_to_rider and delivered.
package order
