// Package evolve drives a genetic.Population for a fixed number of
// generations and reports the best tour found.
//
// The driver makes no algorithmic decisions of its own: it validates input,
// seeds a population, calls Advance exactly the requested number of times,
// and reads Fittest at the end. Progress is exposed through an Observer
// callback instead of printing, so callers decide how (and whether) to log.
//
//	res, err := evolve.Run(cities, 10, 1000, evolve.DefaultOptions())
//	if err != nil {
//	    // errors.Is(err, genetic.ErrInvalidInput) for caller mistakes
//	}
//	fmt.Println(res.Best.Length())
package evolve
