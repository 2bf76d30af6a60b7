// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"bytes"
	"encoding/json"
)

// # Container Shapes

// shape is the tag of a [container].
type shape int

const (
	// shapeNone covers scalars, null, and anything that failed to decode.
	shapeNone shape = iota

	// shapeKeyed is a JSON object: book name or chapter number -> data.
	shapeKeyed

	// shapeOrdered is a JSON array of records scanned in order.
	shapeOrdered
)

// container is a books or chapters collection in one of the accepted shapes,
// flattened into entries so lookups never branch on the raw JSON again.
type container struct {
	shape   shape
	entries []entry
}

// entry is one member of a container. Key is set for keyed containers only.
// Fields is non-nil when the value is itself a JSON object.
type entry struct {
	key    string
	value  json.RawMessage
	fields map[string]json.RawMessage
}

// newContainer normalizes raw into a container. Objects keep their keys;
// key order is irrelevant because keyed lookups are exact.
func newContainer(raw json.RawMessage) container {
	switch firstByte(raw) {
	case '{':
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keyed); err != nil {
			return container{}
		}
		entries := make([]entry, 0, len(keyed))
		for key, value := range keyed {
			entries = append(entries, newEntry(key, value))
		}
		return container{shape: shapeKeyed, entries: entries}

	case '[':
		var ordered []json.RawMessage
		if err := json.Unmarshal(raw, &ordered); err != nil {
			return container{}
		}
		entries := make([]entry, 0, len(ordered))
		for _, value := range ordered {
			entries = append(entries, newEntry("", value))
		}
		return container{shape: shapeOrdered, entries: entries}
	}

	return container{}
}

func newEntry(key string, value json.RawMessage) entry {
	item := entry{key: key, value: value}
	if firstByte(value) == '{' {
		var fields map[string]json.RawMessage
		if json.Unmarshal(value, &fields) == nil {
			item.fields = fields
		}
	}
	return item
}

// # Entry Accessors

// field returns the raw member name and whether the key exists at all.
// A present key may still hold null.
func (item entry) field(name string) (json.RawMessage, bool) {
	if item.fields == nil {
		return nil, false
	}
	value, ok := item.fields[name]
	return value, ok
}

// stringField reports whether member name is a JSON string equal to want.
func (item entry) stringField(name, want string) bool {
	raw, ok := item.field(name)
	if !ok {
		return false
	}
	var value string
	if json.Unmarshal(raw, &value) != nil {
		return false
	}
	return value == want
}

// numberField reports whether member name is a JSON number equal to want.
// 1 and 1.0 compare equal; the string "1" does not.
func (item entry) numberField(name string, want int) bool {
	raw, ok := item.field(name)
	if !ok || firstByte(raw) == '"' {
		return false
	}
	var value float64
	if json.Unmarshal(raw, &value) != nil {
		return false
	}
	return value == float64(want)
}

// unwrap returns the named member when the entry is a record carrying it,
// and the entry value itself otherwise.
func (item entry) unwrap(name string) json.RawMessage {
	if value, ok := item.field(name); ok {
		return value
	}
	return item.value
}

// # Raw JSON Helpers

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// isNull treats absent and literal null the same way.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// isObject reports whether raw is a JSON object.
func isObject(raw json.RawMessage) bool {
	return firstByte(raw) == '{' && json.Valid(raw)
}
