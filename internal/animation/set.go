package animation

// Set tracks one transition per key, for example one per list row
type Set[K comparable] struct {
	cfg         Config
	transitions map[K]*Transition
}

func NewSet[K comparable](cfg Config) *Set[K] {
	return &Set[K]{
		cfg:         cfg,
		transitions: make(map[K]*Transition),
	}
}

// Enter starts (or reverses into) the enter transition for key
func (s *Set[K]) Enter(key K) {
	t, ok := s.transitions[key]
	if !ok {
		t = NewTransition(s.cfg)
		s.transitions[key] = t
	}
	t.Enter()
}

// Show registers key as already fully shown, with no animation
func (s *Set[K]) Show(key K) {
	t := NewTransition(s.cfg)
	t.pos, t.target = 1, 1
	s.transitions[key] = t
}

// Leave starts the leave transition for key. Unknown keys are ignored.
func (s *Set[K]) Leave(key K) {
	if t, ok := s.transitions[key]; ok {
		t.Leave()
	}
}

// Tick advances every transition and returns the keys whose leave
// transition finished. Those keys are forgotten.
func (s *Set[K]) Tick() []K {
	var gone []K
	for key, t := range s.transitions {
		t.Tick()
		if !t.Visible() {
			gone = append(gone, key)
			delete(s.transitions, key)
		}
	}
	return gone
}

// Active reports whether any transition is still moving
func (s *Set[K]) Active() bool {
	for _, t := range s.transitions {
		if !t.Done() {
			return true
		}
	}
	return false
}

// Progress returns 1 for keys that are not tracked
func (s *Set[K]) Progress(key K) float64 {
	if t, ok := s.transitions[key]; ok {
		return t.Progress()
	}
	return 1
}

// Leaving reports whether key is on its way out
func (s *Set[K]) Leaving(key K) bool {
	t, ok := s.transitions[key]
	return ok && !t.Entering()
}

func (s *Set[K]) Len() int {
	return len(s.transitions)
}
