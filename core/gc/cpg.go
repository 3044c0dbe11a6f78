// core/gc/cpg.go
package gc

// ObservedExpectedCpG returns the CpG observed/expected ratio of
// Gardiner-Garden and Frommer, J. Mol. Biol. (1987) 196 (2), 261-282:
//
//	observed_CpG * length / (count_C * count_G)
//
// Both cases are recognized. Returns 0.0 when no CpG dinucleotide
// occurs (including empty and C- or G-free sequences).
func ObservedExpectedCpG(seq []byte) float64 {
	var nC, nG, nCpG int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'C', 'c':
			nC++
			if i+1 < len(seq) && (seq[i+1] == 'G' || seq[i+1] == 'g') {
				nCpG++
			}
		case 'G', 'g':
			nG++
		}
	}
	if nCpG == 0 {
		return 0.0
	}
	return float64(nCpG*len(seq)) / float64(nC*nG)
}
