package feature

/*
Subsets takes the unique values observed for a categorical feature and
returns the candidate subsets to evaluate as membership splits.

The enumeration is deterministic: subsets are produced by increasing
size, and within a size in ascending lexicographic order of the given
values. Every single-value subset is always included. Sizes beyond
half the number of values are omitted, since a membership split on a
subset partitions samples exactly like one on its complement; when the
number of values is even, subsets of exactly half the values are kept
only if they contain the first value, deduplicating complements there
too.
*/
func Subsets(values []string) [][]string {
	k := len(values)
	if k < 2 {
		return nil
	}
	var candidates [][]string
	for size := 1; size <= k/2; size++ {
		combination := make([]int, size)
		for i := range combination {
			combination[i] = i
		}
		for {
			if !(2*size == k && combination[0] != 0) {
				subset := make([]string, size)
				for i, vi := range combination {
					subset[i] = values[vi]
				}
				candidates = append(candidates, subset)
			}
			i := size - 1
			for i >= 0 && combination[i] == k-size+i {
				i--
			}
			if i < 0 {
				break
			}
			combination[i]++
			for j := i + 1; j < size; j++ {
				combination[j] = combination[j-1] + 1
			}
		}
	}
	return candidates
}
