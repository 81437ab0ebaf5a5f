package algorithm

// Tribonacci extends signature to n terms where every new term is the sum of
// the len(signature) terms before it. Three seeds give the classic
// tribonacci sequence. n shorter than the signature truncates it; n <= 0
// returns an empty slice.
func Tribonacci(signature []int, n int) []int {
	return Xbonacci(signature, n)
}

// Xbonacci is the generic form of Tribonacci for any window length.
func Xbonacci[T Number](signature []T, n int) []T {
	if n <= 0 {
		return []T{}
	}

	out := make([]T, n)
	k := copy(out, signature)

	if k == 0 {
		return out
	}

	var window T
	for _, v := range out[:k] {
		window += v
	}

	for i := k; i < n; i++ {
		out[i] = window
		window += out[i] - out[i-k]
	}

	return out
}
