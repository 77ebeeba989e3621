// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup drills into a Value tree along a dotted path. Table entries are
// addressed by key, array elements by their decimal index ("servers.0").
// An empty path returns the value itself.
func Lookup(v *Value, path string) (*Value, error) {
	if path == "" {
		return v, nil
	}

	current := v
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("lookup %q: empty path segment", path)
		}

		switch current.Kind() {
		case Table:
			next := current.Entry(seg)
			if next == nil {
				return nil, fmt.Errorf("lookup %q: key %q not found", path, seg)
			}
			current = next
		case Array:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("lookup %q: %q is not an array index", path, seg)
			}
			if idx < 0 || idx >= current.Len() {
				return nil, fmt.Errorf("lookup %q: index %d out of range", path, idx)
			}
			current = current.Items()[idx]
		default:
			return nil, fmt.Errorf("lookup %q: %q is a %s, not a container", path, seg, current.Kind())
		}
	}

	return current, nil
}
