package fft

import "math"

// NextPowerOfTwo returns the smallest power of two >= n. n <= 1 returns 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFT1D transforms the complex sequence (re, im) in place.
//
// The forward transform uses twiddle angle -2π/len per stage; the inverse
// uses +2π/len and scales every element by 1/n afterwards, so
// FFT1D(x, true) undoes FFT1D(x, false).
//
// FFT1D is a no-op when the length is not a power of two or the slices
// differ in length.
func FFT1D(re, im []float64, inverse bool) {
	n := len(re)
	if len(im) != n || !IsPowerOfTwo(n) {
		return
	}

	bitReverse(re, im)

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		theta := sign * 2 * math.Pi / float64(size)
		for j := 0; j < half; j++ {
			// Twiddle per index, not by recurrence.
			wi, wr := math.Sincos(theta * float64(j))
			for start := j; start < n; start += size {
				k := start + half
				tr := wr*re[k] - wi*im[k]
				ti := wr*im[k] + wi*re[k]
				re[k] = re[start] - tr
				im[k] = im[start] - ti
				re[start] += tr
				im[start] += ti
			}
		}
	}

	if inverse {
		inv := 1 / float64(n)
		for i := range re {
			re[i] *= inv
			im[i] *= inv
		}
	}
}

// bitReverse permutes (re, im) into bit-reversed index order.
func bitReverse(re, im []float64) {
	n := len(re)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
