/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"fmt"
	"strings"
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyKind_Simple:
		return "property"
	case PropertyKind_Association:
		return "association"
	case PropertyKind_Derived:
		return "derived"
	}
	return fmt.Sprintf("PropertyKind(%d)", k)
}

func propertyKindFromString(s string) (PropertyKind, bool) {
	for k := PropertyKind_Simple; k < PropertyKind_count; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return PropertyKind_null, false
}

func (c Cardinality) String() string {
	switch c {
	case Cardinality_ToOne:
		return "1"
	case Cardinality_ToMany:
		return "*"
	}
	return fmt.Sprint(int(c))
}

func nameOrUnnamed(name string) string {
	if name == "" {
		return unnamed
	}
	return strings.ToLower(name)
}

// Plain data readers. Values may come from Go code, JSON or YAML decoders.

func dataString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func dataBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func dataInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func dataSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		res := make([]any, len(s))
		for i := range s {
			res[i] = s[i]
		}
		return res, true
	case []string:
		res := make([]any, len(s))
		for i := range s {
			res[i] = s[i]
		}
		return res, true
	}
	return nil, false
}

func dataMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		res := make(map[string]any, len(m))
		for k, v := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			res[s] = v
		}
		return res, true
	}
	return nil, false
}

func dataStrings(v any) ([]string, bool) {
	s, ok := dataSlice(v)
	if !ok {
		return nil, false
	}
	res := make([]string, 0, len(s))
	for _, i := range s {
		str, ok := dataString(i)
		if !ok {
			return nil, false
		}
		res = append(res, str)
	}
	return res, true
}
