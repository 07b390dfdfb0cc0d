package cli

// Must unwraps a value-error pair from a declaration-site constructor such
// as infer.Parser, panicking on error. CLI trees are static declarations,
// so a failed inference is a programmer error, not an input error.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
