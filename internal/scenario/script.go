package scenario

// Script is the ordered row sequence produced by ingestion. The order is
// fixed after load; sequential position is the default advance target.
type Script struct {
	rows []Row
}

// NewScript wraps pre-built rows, classifying any row whose kind is unset.
func NewScript(rows []Row) *Script {
	owned := make([]Row, len(rows))
	copy(owned, rows)
	for i := range owned {
		owned[i].Kind = Classify(owned[i].SceneID)
	}
	return &Script{rows: owned}
}

// Len reports the number of rows.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Row returns the row at position i. Callers are expected to stay in range;
// the playback runtime treats Len() itself as the terminal sentinel.
func (s *Script) Row(i int) Row {
	return s.rows[i]
}

// Rows returns a copy of the row sequence.
func (s *Script) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// IndexOf returns the position of the first row with the given scene
// identifier, or -1 when no row matches. Scene identifiers are not required
// to be unique; branch resolution always wants the first occurrence.
func (s *Script) IndexOf(sceneID string) int {
	for i := range s.rows {
		if s.rows[i].SceneID == sceneID {
			return i
		}
	}
	return -1
}
