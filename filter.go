package main

// filterRecords keeps the objects among elems that satisfy conds and
// projects them onto keys. Elements that aren't objects are dropped.
// Records are shared with elems, never modified.
func filterRecords(elems []interface{}, conds []condition, keys []string) []interface{} {
	out := make([]interface{}, 0, len(elems))
	for _, elem := range elems {
		rec, ok := elem.(*object)
		if !ok {
			continue
		}
		if !keep(rec, conds) {
			continue
		}
		out = append(out, project(rec, keys))
	}
	return out
}
