// Package cities supplies city sets for the optimizer: seeded random
// instances, the fixed 10-city sample, and JSON/YAML files of
// [{"x": .., "y": ..}, ...] records.
package cities
