// core/gc/composition.go
package gc

// Composition holds per-base counts for one scan. Other absorbs every
// byte outside the eight recognized letters (ambiguity codes, gaps,
// whitespace that survived parsing, anything).
type Composition struct {
	A, C, G, T int
	Other      int
}

// Profile scans seq once and tallies each byte into its base bucket,
// using the same case-explicit classification as Count.
func Profile(seq []byte) Composition {
	var m Composition
	for _, b := range seq {
		switch b {
		case 'A', 'a':
			m.A++
		case 'C', 'c':
			m.C++
		case 'G', 'g':
			m.G++
		case 'T', 't':
			m.T++
		default:
			m.Other++
		}
	}
	return m
}

// Add returns the element-wise sum of m and o.
func (m Composition) Add(o Composition) Composition {
	return Composition{
		A: m.A + o.A, C: m.C + o.C, G: m.G + o.G, T: m.T + o.T,
		Other: m.Other + o.Other,
	}
}

// GC projects the composition onto the two GC accumulators.
func (m Composition) GC() Counts {
	return Counts{GC: m.G + m.C, Valid: m.A + m.C + m.G + m.T}
}

// Length is the total number of bytes scanned, valid or not.
func (m Composition) Length() int {
	return m.A + m.C + m.G + m.T + m.Other
}
