// Package narrative turns maneuvers into the five instruction texts of a
// turn-by-turn guidance record.
//
// What:
//
//   - Instruction: the written form. Lists are joined with "/" and never carry
//     markup.
//   - VerbalSuccinct: the direction verb only. Street names are dropped; a
//     sign-bearing maneuver keeps its exit number.
//   - VerbalAlert: one element (the first sign element by exit number, branch,
//     toward, name; otherwise the first street name).
//   - VerbalPre: up to two elements per list.
//   - VerbalPost: a "continue for <length>" phrase for every maneuver that has
//     a successor and covers at least one meter.
//
// Verbal lists are joined with ", " and each element is passed through the
// configured markup.Formatter, so pronunciations reach speech output.
//
// Guide signs take precedence over street names: a maneuver with any primary
// sign entry is phrased from its signs. When the dictionary has no template
// for that sign shape, a field degrades to the largest phrasable subset of
// the signs, then to the street names, then to the bare phrase. The wording itself comes from a
// phrase.Dictionary; this package only computes the phrase.Key (group,
// variant, element shape and count) and the substituted values.
//
// A field with no template at all is not an error: it is left empty and the
// key is logged at debug level.
//
// Complexity: O(M·L) for M maneuvers and element lists of length L.
// A *Builder is immutable after New and safe for concurrent use.
package narrative
