// Package phrase holds the locale phrase templates of the narrative builder.
//
// Templates are selected by a closed Key rather than a free-form string:
//
//	Key{Group: GroupExit, Variant: VariantInstruction, Shape: ShapeNumber | ShapeBranch | ShapeToward}
//
// Group names the maneuver family, Variant the instruction field, Shape the
// set of elements bound into the template and Count whether any bound list
// holds one or several elements. Lookup tries the exact Count first and then
// the count-agnostic entry.
//
// Dictionaries are YAML documents:
//
//	language: en-US
//	phrases:
//	  exit:
//	    instruction:
//	      number+branch+toward: "Take exit <NUMBER> onto <BRANCH_SIGN> toward <TOWARD_SIGN>."
//	      toward/many: "Take the exit toward <TOWARD_SIGN>."
//	relative_directions: {left: left, right: right}
//	cardinal_directions: {north: north, ...}
//	ordinals: [1st, 2nd, ...]
//	units:
//	  metric: {less_than_ten: ..., short: "<DISTANCE> meters", one: ..., long: ...}
//	  imperial: {...}
//
// Shape tokens are street, number, branch, toward, name and ordinal joined by
// '+'; "bare" is the empty shape. Templates may only use the placeholders
// declared by this package.
//
// Default returns the embedded en-US dictionary.
//
// Errors:
//
//   - ErrBadDictionary when a document cannot be decoded or names an unknown
//     group, variant, shape, count or placeholder.
//   - ErrMissingTemplate from Lookup when no template matches a Key.
//
// A *Dictionary is read-only after Parse and safe for concurrent use.
package phrase
