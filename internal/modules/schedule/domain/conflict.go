package domain

// Conflict is a pair of planned sections whose meetings overlap on one day.
type Conflict struct {
	SectionA int64
	SectionB int64
	Day      int
	AStart   string
	AEnd     string
	BStart   string
	BEnd     string
}

// Pairs drops the mirrored duplicate the backend reports for each overlap
// (a,b and b,a), keeping the first.
func Pairs(conflicts []Conflict) []Conflict {
	type key struct {
		lo, hi int64
		day    int
	}
	seen := map[key]bool{}
	out := make([]Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		k := key{lo: c.SectionA, hi: c.SectionB, day: c.Day}
		if k.lo > k.hi {
			k.lo, k.hi = k.hi, k.lo
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}
