package targets

// Store is the ordered target collection of one session. Insertion order is
// draw order, so the last live target is the one on top. Hit targets stay in
// the collection until the next Reset.
type Store struct {
	targets []*Target
	nextID  int
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
	}
}

func (s *Store) Add(t *Target) *Target {
	t.ID = s.nextID
	s.nextID++
	s.targets = append(s.targets, t)
	return t
}

// Reset replaces the whole collection and restarts id numbering.
func (s *Store) Reset(ts []*Target) {
	s.Clear()
	for _, t := range ts {
		s.Add(t)
	}
}

// All returns every target in draw order, including hit ones.
func (s *Store) All() []*Target {
	return s.targets
}

// GetList returns copies of the live targets in draw order.
func (s *Store) GetList() []Target {
	targetList := make([]Target, 0, len(s.targets))
	for _, t := range s.targets {
		if !t.Hit {
			targetList = append(targetList, *t)
		}
	}
	return targetList
}

func (s *Store) Update(width float64) {
	for _, t := range s.targets {
		t.Update(width)
	}
}

func (s *Store) Clear() {
	s.targets = nil
	s.nextID = 1
}
