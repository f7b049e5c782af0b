package engine

// Match reports whether two connector labels can form a link. The
// uppercase heads must be identical; lowercase subscript tails unify
// position by position, with '*' or absence matching anything.
func Match(a, b string) bool {
	ha, hb := upperHead(a), upperHead(b)
	if ha == "" || ha != hb {
		return false
	}
	sa, sb := a[len(ha):], b[len(hb):]
	n := len(sa)
	if len(sb) < n {
		n = len(sb)
	}
	for i := 0; i < n; i++ {
		if sa[i] != sb[i] && sa[i] != '*' && sb[i] != '*' {
			return false
		}
	}
	return true
}

func upperHead(label string) string {
	for i := 0; i < len(label); i++ {
		if label[i] < 'A' || label[i] > 'Z' {
			return label[:i]
		}
	}
	return label
}

// matchCache memoizes label-pair match results for one pruning
// generation.
type matchCache struct {
	seen map[[2]string]bool
}

func newMatchCache() *matchCache {
	return &matchCache{seen: make(map[[2]string]bool)}
}

func (m *matchCache) match(a, b string) bool {
	key := [2]string{a, b}
	if v, cached := m.seen[key]; cached {
		return v
	}
	v := Match(a, b)
	m.seen[key] = v
	return v
}

func (m *matchCache) Release() {
	m.seen = nil
}
