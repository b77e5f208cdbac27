// Package thematic compares the thematic (textual) attributes attached to
// matched footprints — typically building names — independently of any
// geometry.
//
// The only measure is the classic Levenshtein edit distance with unit-cost
// insertions, deletions and substitutions. Strings are compared as rune
// sequences, so multi-byte characters count as single edits.
package thematic
