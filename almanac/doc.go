// Package almanac reads the plain-text almanac format into seeds and a
// remap.Pipeline.
//
// Format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//	...
//
// The seeds line comes first. Each "<source>-to-<destination> map:" header
// opens a stage; every following non-blank line up to the next header is a
// "destination source length" triple. Category names are kept as stage
// labels only.
//
// Errors are reported as *ParseError carrying the 1-based line number; all
// of them match ErrParse under errors.Is.
package almanac
