// Package kernel contains the shared value objects of the dispatch domain.
// It currently holds the UUID value object used as the identity of every
// aggregate (assignments, orders, riders, history entries).
//
// Kernel types are immutable, validate themselves, and carry no dependencies
// on other domain packages, which keeps them safe to use from any layer.
package kernel
