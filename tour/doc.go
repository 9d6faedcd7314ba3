// Package tour implements the candidate solution of the genetic search: an
// ordered cyclic route over a fixed city set, with cached length and fitness.
//
// A Tour exclusively owns its route. Constructors copy their input and Clone
// performs a deep copy, so no Tour ever shares backing storage with another.
// The cached length and fitness are either both unset or both set and
// consistent (fitness == 1/length); Mutate invalidates and immediately
// re-evaluates them.
//
// Fitness policy for degenerate tours: a route of total length 0 (a single
// city, or all cities coincident) has fitness +Inf. Callers that cannot
// tolerate +Inf check IsDegenerate; package genetic rejects such city sets
// before any evolution starts.
//
// Mutation is a 2-opt style segment reversal driven by an explicit
// *rand.Rand, which keeps runs reproducible for a fixed seed.
package tour
