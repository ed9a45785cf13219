package shiftmap

type Stats struct {
	Size       int
	Capacity   int
	Limit      int
	LoadFactor float64
	MaxProbe   int
	AvgProbe   float64
}

func (m *Map[K, V]) Stats() Stats {
	s := m.t.stats()
	if m.hasZero {
		s.Size++
	}

	return s
}

func (s *Set[K]) Stats() Stats {
	st := s.t.stats()
	if s.hasZero {
		st.Size++
	}

	return st
}

// stats reports occupancy and probe-length distribution. The probe length of
// a key is its distance from its ideal slot; with backward-shift deletion in
// place it never includes empty slots.
func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   t.capacity(),
		Limit:      t.limit,
		LoadFactor: t.loadFactor,
	}

	mask := int(t.mask)
	total := 0
	for i, k := range t.keys {
		if k == t.zero {
			continue
		}

		d := (i - t.place(t.hashFunc(k))) & mask
		total += d
		if d > s.MaxProbe {
			s.MaxProbe = d
		}
	}

	if t.size > 0 {
		s.AvgProbe = float64(total) / float64(t.size)
	}

	return s
}
