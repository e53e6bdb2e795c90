package browse

// JoinedSet holds the request ids the viewer has a participant record for.
// It is replaced wholesale on every dashboard load, never merged.
type JoinedSet map[int64]struct{}

func NewJoinedSet(ids []int64) JoinedSet {
	out := make(JoinedSet, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func (s JoinedSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s JoinedSet) Empty() bool {
	return len(s) == 0
}
