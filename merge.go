// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

// MergeProperties merges property lists in order.
//
// A later value for an already seen name replaces the earlier value in place,
// so the result keeps first-seen name order.
func MergeProperties(sets ...[]Property) []Property {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]Property, 0, total)
	index := make(map[string]int, total)
	for _, set := range sets {
		for _, p := range set {
			if i, ok := index[p.Name]; ok {
				out[i].Value = p.Value
				continue
			}

			index[p.Name] = len(out)
			out = append(out, p)
		}
	}

	return out
}
