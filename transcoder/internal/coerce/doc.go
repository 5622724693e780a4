// Package coerce converts loosely typed JSON values into fixed-width numbers.
//
// JSON input may carry integers as numbers (json.Number), as decimal strings
// (the canonical form for 64-bit and wider values), or as native Go integers
// when a caller builds values programmatically. All of them coerce through
// the same range-checked path.
//
// This package is internal to the transcoder.
package coerce
