package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

func IsMidiPath(s string) bool {
	return strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi")
}

// GatherAllMidiPaths expands directories into the MIDI files below them and
// keeps plain file arguments as they are. maxNum of 0 means no limit.
func GatherAllMidiPaths(args []string, maxNum int) ([]string, error) {
	var res []string
	add := func(s string) {
		if maxNum == 0 || len(res) < maxNum {
			res = append(res, s)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(s string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsMidiPath(s) {
				add(s)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
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

// Unique returns the distinct values of nums in ascending order.
func Unique[A constraints.Ordered](nums []A) []A {
	seen := make(map[A]struct{}, len(nums))
	res := make([]A, 0, len(nums))
	for _, v := range nums {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			res = append(res, v)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func Filter[A any](items []A, keep func(A) bool) []A {
	var res []A
	for _, v := range items {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func GCD[A constraints.Unsigned](a, b A) A {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
