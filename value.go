package jsonedit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	NullValue Kind = iota
	BoolValue
	NumberValue
	StringValue
	ArrayValue
	ObjectValue
)

func (k Kind) String() string {
	switch k {
	case NullValue:
		return "null"
	case BoolValue:
		return "boolean"
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case ArrayValue:
		return "array"
	case ObjectValue:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed JSON document. Objects keep their members in
// Fields/Values parallel slices so insertion order survives a parse/encode
// round trip; numbers keep their source lexeme so "1.0" does not come back
// as "1".
type Value struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	Str    string
	Elems  []*Value // ArrayValue elements
	Fields []string // ObjectValue member keys, parallel to Values
	Values []*Value // ObjectValue member values
}

func Null() *Value { return &Value{Kind: NullValue} }

func FromBool(b bool) *Value { return &Value{Kind: BoolValue, Bool: b} }

func FromString(s string) *Value { return &Value{Kind: StringValue, Str: s} }

func FromNumber(n json.Number) *Value { return &Value{Kind: NumberValue, Number: n} }

func FromInt(i int64) *Value {
	return FromNumber(json.Number(strconv.FormatInt(i, 10)))
}

func FromFloat(f float64) *Value {
	return FromNumber(json.Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

func NewArray() *Value { return &Value{Kind: ArrayValue} }

func NewObject() *Value { return &Value{Kind: ObjectValue} }

func (v *Value) container() bool {
	return v.Kind == ArrayValue || v.Kind == ObjectValue
}

// Field returns the member value for key, or nil if absent.
func (v *Value) Field(key string) *Value {
	if v.Kind != ObjectValue {
		return nil
	}
	for i, f := range v.Fields {
		if f == key {
			return v.Values[i]
		}
	}
	return nil
}

// SetField replaces the member for key, appending a new member when the key
// is not present yet.
func (v *Value) SetField(key string, val *Value) {
	for i, f := range v.Fields {
		if f == key {
			v.Values[i] = val
			return
		}
	}
	v.Fields = append(v.Fields, key)
	v.Values = append(v.Values, val)
}

// Elem returns the array element at i, or nil when i is out of range.
func (v *Value) Elem(i int) *Value {
	if v.Kind != ArrayValue || i < 0 || i >= len(v.Elems) {
		return nil
	}
	return v.Elems[i]
}

// SetElem stores val at index i, extending the array with nulls when i is
// beyond the current length.
func (v *Value) SetElem(i int, val *Value) {
	for len(v.Elems) <= i {
		v.Elems = append(v.Elems, Null())
	}
	v.Elems[i] = val
}

// FromGo lifts a JSON-compatible Go value into a Value tree. A *Value passes
// through unchanged. Map keys are emitted in sorted order since Go maps carry
// no order of their own.
func FromGo(v any) (*Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return FromNumber(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case float64:
		return FromFloat(t), nil
	case []any:
		arr := NewArray()
		for _, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, ev)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			ev, err := FromGo(t[k])
			if err != nil {
				return nil, err
			}
			obj.SetField(k, ev)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// Interface lowers the tree back to plain Go values: objects become
// map[string]any (order is carried only by the Value tree itself), arrays
// []any, numbers json.Number.
func (v *Value) Interface() any {
	switch v.Kind {
	case NullValue:
		return nil
	case BoolValue:
		return v.Bool
	case NumberValue:
		return v.Number
	case StringValue:
		return v.Str
	case ArrayValue:
		out := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = e.Interface()
		}
		return out
	case ObjectValue:
		out := make(map[string]any, len(v.Fields))
		for i, f := range v.Fields {
			out[f] = v.Values[i].Interface()
		}
		return out
	default:
		return nil
	}
}

// ParseValue decodes exactly one JSON value from data. It fails with
// *ParseError on a syntax error and on trailing non-whitespace input.
func ParseValue(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected trailing data")
		}
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of input")
		}
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.SetField(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Elems = append(arr.Elems, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case json.Number:
		return FromNumber(t), nil
	case string:
		return FromString(t), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// Encode serializes the tree as canonical JSON text: 2-space indentation,
// members in tree order, no trailing newline.
func (v *Value) Encode() []byte {
	var buf bytes.Buffer
	v.encode(&buf, 0)
	return buf.Bytes()
}

func (v *Value) encode(buf *bytes.Buffer, depth int) {
	switch v.Kind {
	case NullValue:
		buf.WriteString("null")
	case BoolValue:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case NumberValue:
		if v.Number == "" {
			buf.WriteString("0")
			return
		}
		buf.WriteString(v.Number.String())
	case StringValue:
		writeQuoted(buf, v.Str)
	case ArrayValue:
		if len(v.Elems) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i, e := range v.Elems {
			writeIndent(buf, depth+1)
			e.encode(buf, depth+1)
			if i < len(v.Elems)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte(']')
	case ObjectValue:
		if len(v.Fields) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i, f := range v.Fields {
			writeIndent(buf, depth+1)
			writeQuoted(buf, f)
			buf.WriteString(": ")
			v.Values[i].encode(buf, depth+1)
			if i < len(v.Fields)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte('}')
	}
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

func writeQuoted(buf *bytes.Buffer, s string) {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the output well formed
		// regardless.
		b = []byte(`""`)
	}
	buf.Write(b)
}

// YAMLNode converts the tree to a yaml.v3 node for YAML display output,
// keeping object member order.
func (v *Value) YAMLNode() *yaml.Node {
	switch v.Kind {
	case NullValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case BoolValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}
	case NumberValue:
		tag := "!!float"
		if !strings.ContainsAny(v.Number.String(), ".eE") {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.Number.String()}
	case StringValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str}
	case ArrayValue:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Elems {
			n.Content = append(n.Content, e.YAMLNode())
		}
		return n
	case ObjectValue:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, f := range v.Fields {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f}
			n.Content = append(n.Content, key, v.Values[i].YAMLNode())
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
