package phrase

// Values binds placeholders to rendered text.
type Values map[string]string

// Substitute replaces every placeholder of template bound in values.
// Unbound placeholders are left in place.
func Substitute(template string, values Values) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(tok string) string {
		if v, ok := values[tok]; ok {
			return v
		}
		return tok
	})
}
