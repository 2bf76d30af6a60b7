// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice holds the small generic helpers the standard [slices] package
lacks: Map, Filter and Unique.
*/
package slice

// Map applies transform to every element. A nil input yields nil.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}
	out := make([]U, 0, len(input))
	for _, item := range input {
		out = append(out, transform(item))
	}
	return out
}

// Filter keeps the elements accepted by keep, in order. A nil input yields
// nil; any other input yields a non-nil slice.
func Filter[T any](input []T, keep func(T) bool) []T {
	if input == nil {
		return nil
	}
	out := make([]T, 0, len(input))
	for _, item := range input {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Unique drops repeated elements, keeping the first occurrence of each.
func Unique[T comparable](input []T) []T {
	seen := make(map[T]struct{}, len(input))
	return Filter(input, func(item T) bool {
		if _, dup := seen[item]; dup {
			return false
		}
		seen[item] = struct{}{}
		return true
	})
}
