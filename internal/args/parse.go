package args

import "strings"

// Args holds the named arguments of one invocation.
type Args map[string]string

// Get returns the value for key and whether it was given.
func (a Args) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Take removes key from a and returns its value.
func (a Args) Take(key string) (string, bool) {
	v, ok := a[key]
	if ok {
		delete(a, key)
	}
	return v, ok
}

// Parse turns --name=value tokens into Args.
// The value runs to the end of the token, so it may itself contain '='.
// A token without '=' gets an empty value. Later tokens override earlier
// ones with the same name.
func Parse(tokens []string) Args {
	out := make(Args, len(tokens))
	for _, tok := range tokens {
		name, value, _ := strings.Cut(tok, "=")
		name = strings.TrimPrefix(name, "--")
		out[name] = value
	}
	return out
}
