// Package feedback encodes and decodes per-position guess feedback.
//
// A pattern is an integer in [0, 3^5) in base 3: digit i describes
// position i as miss (0), present-elsewhere (1) or exact (2). Encoding
// follows the game's official duplicate-letter rules: exact matches are
// claimed first, then present-elsewhere credit is granted left to right
// only while unclaimed occurrences of the letter remain in the answer.
//
// The string form uses '_' for miss, 'y' for present-elsewhere and 'g'
// for exact, e.g. "_yg__".
package feedback
