// Package ratelimit implements a sliding-window rate limiter keyed by
// client address. Request timestamps live in an ordered, score-sorted
// collection with a rolling horizon; the admission decision and the
// counter update execute as one atomic transaction against the backing
// store. The Redis store is authoritative across instances; the memory
// store serves single-instance and degraded deployments.
package ratelimit
