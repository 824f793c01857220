// Package tags decodes the raw attribute bag of one road segment into the
// strongly typed core.Edge model. It is the only place in lvguide that knows
// raw key strings; every later stage works on core types.
//
// What:
//
//   - Street names: name, alt_name, official_name, ref, int_ref (in that order).
//   - Signs: junction:ref → exit_number; destination:ref, destination:int_ref,
//     destination:street → exit_branch (route numbers first); destination →
//     exit_toward; junction:name → exit_name; destination:ref:to,
//     destination:street:to → exit_branch_to; destination:to → exit_toward_to.
//   - Pronunciations: "<key>:pronunciation" (IPA) and the alphabet-qualified
//     forms "<key>:pronunciation:katakana", ":jeita" and ":nt-sampa".
//   - Road class from highway=*, ramps from the *_link suffix, roundabouts from
//     junction=roundabout.
//
// Multi-valued attributes are split on ';'. The N-th text receives the N-th
// pronunciation; lists of unequal length are zipped up to the shorter one and
// remaining texts carry no pronunciation. Attributes with empty values are
// dropped, texts are trimmed and NFC-normalised.
//
// Errors:
//
//   - core.ErrMalformedInput when a non-empty pronunciation attribute has no
//     base attribute to align against.
package tags
