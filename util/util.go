package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func Gcd[A constraints.Integer](a, b A) A {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func Lcm[A constraints.Integer](a, b A) A {
	if a == 0 || b == 0 {
		return 0
	}
	return a / Gcd(a, b) * b
}

// LcmAll folds Lcm over nums, returning 1 for an empty list.
func LcmAll[A constraints.Integer](nums ...A) A {
	var res A = 1
	for _, v := range nums {
		res = Lcm(res, v)
	}
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func IsPowerOfTwo[A constraints.Integer](x A) bool {
	return x > 0 && x&(x-1) == 0
}
