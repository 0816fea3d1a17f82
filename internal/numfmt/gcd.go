// Package numfmt holds the pure arithmetic and text-formatting helpers shared
// by every question generator.
package numfmt

// Primes are the candidate common factors tried, smallest first, when a
// ratio is reduced one step at a time.
var Primes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// GCD returns the greatest common divisor of a and b. The result is never
// negative; GCD(0, 0) is 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// HCF returns the highest common factor of every element of nums.
// An empty slice yields 0.
func HCF(nums []int) int {
	h := 0
	for _, n := range nums {
		h = GCD(h, n)
	}
	return h
}

// Coprime reports whether the parts share no common factor above 1.
func Coprime(nums []int) bool {
	return HCF(nums) == 1
}

// AllEqual reports whether every element equals the first.
func AllEqual(nums []int) bool {
	for _, n := range nums[1:] {
		if n != nums[0] {
			return false
		}
	}
	return true
}

// SmallestCommonPrime returns the smallest entry of Primes dividing every
// element of nums, or 0 when none does.
func SmallestCommonPrime(nums []int) int {
	for _, p := range Primes {
		ok := true
		for _, n := range nums {
			if n%p != 0 {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return 0
}

// Sum adds up the parts.
func Sum(nums []int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

// Scale returns a copy of nums with every element multiplied by k.
func Scale(nums []int, k int) []int {
	out := make([]int, len(nums))
	for i, n := range nums {
		out[i] = n * k
	}
	return out
}

// Divide returns a copy of nums with every element divided by k.
func Divide(nums []int, k int) []int {
	out := make([]int, len(nums))
	for i, n := range nums {
		out[i] = n / k
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
