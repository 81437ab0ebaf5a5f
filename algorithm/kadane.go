package algorithm

// MaxSubarraySum returns the largest sum of a contiguous run of s using
// Kadane's algorithm.
//
// Both the running sum and the best sum start at zero and the running sum is
// reset to zero whenever it drops below it, so the empty run always counts:
// a sequence with no positive element yields 0, never its least negative
// element.
func MaxSubarraySum[T Number](s []T) T {
	var best, local T

	for _, v := range s {
		local += v

		if local > best {
			best = local
		}

		if local < 0 {
			local = 0
		}
	}

	return best
}
