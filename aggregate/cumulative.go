package aggregate

// Cumulative returns the running totals of counts, which must be ordered
// oldest first. The result has the same length as counts.
func Cumulative(counts []int) []int {
	totals := make([]int, len(counts))

	sum := 0
	for i, c := range counts {
		sum += c
		totals[i] = sum
	}

	return totals
}
