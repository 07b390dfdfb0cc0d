package cli

import "slices"

// optArg is one parsed occurrence before merging: a spelling (or positional
// name) paired with its parsed value.
type optArg struct {
	name  string
	value any
}

// mergeOccurrences consolidates aliased spellings into canonical parameter
// names. For each declared Param the matching occurrences are folded left
// to right through its resolver; occurrences matching no Param pass through
// unchanged. The result holds at most one entry per canonical name.
func mergeOccurrences(params []*Param, optargs []optArg) map[string]any {
	for _, param := range params {
		optargs = foldParam(optargs, param)
	}
	names := make(map[string]any, len(optargs))
	for _, oa := range optargs {
		names[oa.name] = oa.value
	}
	return names
}

func foldParam(optargs []optArg, param *Param) []optArg {
	kept := make([]optArg, 0, len(optargs))
	var acc any
	found := false
	for _, oa := range optargs {
		if !slices.Contains(param.spellings, oa.name) {
			kept = append(kept, oa)
			continue
		}
		if !found {
			acc = oa.value
			found = true
		} else {
			acc = param.resolve(acc, oa.value)
		}
	}
	if found {
		kept = append(kept, optArg{name: param.name, value: acc})
	}
	return kept
}
