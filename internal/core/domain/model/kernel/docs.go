// Package kernel holds the primitives shared by every aggregate in the
// domain model: the UUID identity value object and the ConstructorGuard
// that makes bypassed constructors detectable. Both are immutable and safe
// for concurrent use.
package kernel
