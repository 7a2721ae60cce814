// Package jsonedit edits single nodes of a JSON document through a focused
// view: it collapses a node's displayed rows into an editable buffer
// (Normalize), renders the node's structural path as a locator string
// (Format), and writes an edited value back into the full document at that
// path (Update). The document is always re-serialized whole; the package
// never holds document state between calls.
package jsonedit

import "fmt"

// Update applies newValue at path inside the document text and returns the
// full document re-serialized in canonical form. newValue may be a *Value or
// any JSON-compatible Go value.
//
// An empty path replaces the document root outright. Otherwise the walk
// creates every missing intermediate container on the way down: an array
// when the following segment is an index, an object when it is a key. A
// scalar found where the path needs to descend further is overwritten with
// the freshly created container (last write wins, structure over legacy
// scalar). The final segment is assigned directly, replacing whatever was
// there, containers included.
//
// Update fails with *ParseError when doc is not valid JSON and performs no
// mutation in that case; the input text is never returned corrupted.
func Update(doc []byte, path Path, newValue any) ([]byte, error) {
	root, err := ParseValue(doc)
	if err != nil {
		return nil, err
	}
	val, err := FromGo(newValue)
	if err != nil {
		return nil, &UpdateError{Op: "convert value", Err: err}
	}
	if len(path) == 0 {
		return val.Encode(), nil
	}

	for _, seg := range path {
		if seg.IsIndex && seg.Index < 0 {
			return nil, &UpdateError{Op: "resolve " + Format(path), Err: fmt.Errorf("negative array index %d", seg.Index)}
		}
	}

	cur := root
	for i, seg := range path[:len(path)-1] {
		ensureIndexable(cur, seg)
		child := childAt(cur, seg)
		if child == nil {
			child = emptyContainerFor(path[i+1])
			setChildAt(cur, seg, child)
		} else if !child.container() {
			// Scalar in the middle of the path: it loses to the structure
			// the edit needs.
			*child = *emptyContainerFor(path[i+1])
		}
		cur = child
	}
	last := path[len(path)-1]
	ensureIndexable(cur, last)
	setChildAt(cur, last, val)

	return root.Encode(), nil
}

// Get resolves path inside the document text and returns the value there. It
// fails with *ParseError on invalid JSON and with an *UpdateError wrapping
// ErrNotFound when the path does not resolve.
func Get(doc []byte, path Path) (*Value, error) {
	root, err := ParseValue(doc)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range path {
		child := childAt(cur, seg)
		if child == nil {
			return nil, &UpdateError{Op: "resolve " + Format(path), Err: fmt.Errorf("no value at %s: %w", seg, ErrNotFound)}
		}
		cur = child
	}
	return cur, nil
}

// ensureIndexable makes cur a container that seg can address, replacing it
// in place otherwise. An index segment tolerates an existing object (the
// index addresses the member with the decimal key, mirroring bracket
// assignment in the formats this package interoperates with).
func ensureIndexable(cur *Value, seg Segment) {
	switch {
	case !seg.IsIndex && cur.Kind != ObjectValue:
		*cur = *NewObject()
	case seg.IsIndex && cur.Kind != ArrayValue && cur.Kind != ObjectValue:
		*cur = *NewArray()
	}
}

// emptyContainerFor picks the container kind a freshly created intermediate
// needs so the following segment can address it.
func emptyContainerFor(next Segment) *Value {
	if next.IsIndex {
		return NewArray()
	}
	return NewObject()
}

func childAt(cur *Value, seg Segment) *Value {
	switch cur.Kind {
	case ObjectValue:
		return cur.Field(segmentKey(seg))
	case ArrayValue:
		if !seg.IsIndex {
			return nil
		}
		return cur.Elem(seg.Index)
	default:
		return nil
	}
}

func setChildAt(cur *Value, seg Segment, val *Value) {
	switch cur.Kind {
	case ObjectValue:
		cur.SetField(segmentKey(seg), val)
	case ArrayValue:
		cur.SetElem(seg.Index, val)
	}
}

func segmentKey(seg Segment) string {
	if seg.IsIndex {
		return fmt.Sprintf("%d", seg.Index)
	}
	return seg.Key
}
