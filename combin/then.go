package combin

import "fmt"

// ThenFunc folds the values accumulated by [Repeat] or [And] into the final
// parse result.
type ThenFunc func(values []any) (any, error)

// AsList materializes the accumulated values as a slice.
// This is the default collector.
func AsList(values []any) (any, error) {
	if values == nil {
		values = []any{}
	}
	return values, nil
}

// AsTuple materializes the accumulated values as a fixed-size sequence.
// The representation is the same as [AsList]; the separate name keeps
// declaration sites honest about arity expectations.
func AsTuple(values []any) (any, error) {
	return AsList(values)
}

// AsMap flattens a sequence of two-element pairs, as produced by
// Repeat(And(key, value)), into a string-keyed map.
func AsMap(values []any) (any, error) {
	m := make(map[string]any, len(values))
	for _, value := range values {
		pair, ok := value.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("expected a key-value pair, got %v", value)
		}
		key, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("map key must be a string, got %v", pair[0])
		}
		m[key] = pair[1]
	}
	return m, nil
}
