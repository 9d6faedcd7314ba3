// Package gatsp searches for short closed tours through points in the plane
// with a mutation-only genetic algorithm.
//
// The library is split into small packages, leaf first:
//
//	geom      Point and the Euclidean metric
//	tour      cyclic route with cached length and fitness, reversal
//	          mutation, 2-opt polish
//	genetic   Population: rank, elitism, fitness-proportional mating
//	          pool, mutation, generational merge
//	evolve    generation loop, per-generation statistics and summary
//	cities    random, built-in and file-based city sets
//	render    SVG/PNG route and convergence charts
//	report    JSON run report
//	config    YAML run configuration
//
// The gatsp command in cmd/gatsp wires these together.
//
// Quick example:
//
//	res, err := evolve.Run(cities.Sample(), 10, 1000, evolve.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Best.Length())
//
// Runs are deterministic for a fixed seed.
//
//	go get github.com/katalvlaran/gatsp
package gatsp
