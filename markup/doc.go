// Package markup renders pronunciation-bearing text for speech-capable
// consumers.
//
// A Formatter is compiled once from a Config: the quote placeholder <QUOTES>
// is replaced by the configured quote character and the two positional
// placeholders are located. Rendering then binds %1% to the display text and
// %2% to the pronunciation value, and entity-escapes every quote character of
// the rendered fragment so it can be embedded in markup-bearing output:
//
//	Config{Enabled: true, PhonemeFormat: `%1% (<span class=<QUOTES>phoneme<QUOTES>>/%2%/</span>)`}
//	Render("Lancaster", ˈlæŋkəstər) → Lancaster (<span class=&quot;phoneme&quot;>/ˈlæŋkəstər/</span>)
//
// Text without a pronunciation, a disabled Config and a nil *Formatter all
// pass the text through unchanged. The pronunciation alphabet is metadata
// for downstream voice selection and never appears in the output.
//
// Errors:
//
//   - ErrConfiguration from New when the format lacks %1% or %2%, repeats one
//     of them, carries any other %N% token, or the quote is not a single
//     character.
//
// Complexity: New is O(len(format)); Render is O(len(output)).
// A *Formatter is immutable and safe for concurrent use.
package markup
