package tools

// Args is the decoded argument bag of a tools/call request. Accessors
// validate types at the dispatch boundary; wrongly-typed values fall back
// to the documented default.
type Args map[string]interface{}

// String returns the named string argument or def.
func (a Args) String(key, def string) string {
	if v, ok := a[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Bool returns the named boolean argument or def.
func (a Args) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}
