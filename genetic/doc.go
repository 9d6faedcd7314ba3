// Package genetic runs the mutation-only evolutionary search over tours.
//
// A Population holds a fixed number of tours over one city set. Each call to
// Advance performs one full generation:
//
//  1. Rank the population by descending fitness (stable).
//  2. Elitism: deep-copy the top ⌊size·EliteFraction⌋ tours.
//  3. Mating pool: from a second deep copy, replicate each tour
//     max(1, ⌊fitness·PoolScale⌋) times (capped by MaxCopies when set);
//     every replica is an independent clone.
//  4. Mutation: each pool entry is mutated with probability MutationRate.
//  5. Re-rank the pool and keep the best size−eliteCount entries.
//  6. Merge elites, survivors, and a deep copy of the pre-advance generation;
//     the best size tours become the next generation.
//
// Because the untouched previous generation always competes in step 6, the
// best fitness never decreases from one generation to the next.
//
// Determinism: all randomness flows from one *rand.Rand (Options.Rand, or a
// source built from Options.Seed with the seed==0 ⇒ default-seed policy), so
// a fixed seed reproduces a run exactly.
//
// Concurrency: a Population is not safe for concurrent use; Advance is a
// synchronous whole-population transformation.
package genetic
