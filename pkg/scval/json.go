package scval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
)

type wireValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type wireField struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// MarshalJSON renders v as {"type": tag, "value": payload}. Integers are
// decimal strings so that i128 values survive JSON number handling.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload interface{}
	switch v.kind {
	case KindVoid:
		return json.Marshal(wireValue{Type: KindVoid.String()})
	case KindBool:
		payload = v.b
	case KindU32, KindU64:
		payload = strconv.FormatUint(v.u, 10)
	case KindI128:
		payload = v.i.String()
	case KindSymbol, KindString, KindAddress:
		payload = v.s
	case KindVec:
		items := v.vec
		if items == nil {
			items = []Value{}
		}
		payload = items
	case KindStruct:
		fields := make([]wireField, len(v.fields))
		for i, f := range v.fields {
			fields[i] = wireField{Name: f.Name, Value: f.Value}
		}
		payload = fields
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %d", v.kind)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireValue{Type: v.kind.String(), Value: raw})
}

// UnmarshalJSON parses the form produced by MarshalJSON. Payloads are
// validated with the same rules as the constructors.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := parseKind(w.Type)
	if !ok {
		return fmt.Errorf("unknown value type %q", w.Type)
	}

	switch kind {
	case KindVoid:
		*v = Void()
		return nil
	case KindBool:
		var b bool
		if err := json.Unmarshal(w.Value, &b); err != nil {
			return fmt.Errorf("bool payload: %w", err)
		}
		*v = NewBool(b)
		return nil
	case KindU32, KindU64, KindI128:
		text, err := integerText(w.Value)
		if err != nil {
			return err
		}
		parsed, err := EncodeHint(text, Hint{kind: kind})
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	case KindSymbol, KindString, KindAddress:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return fmt.Errorf("%s payload: %w", kind, err)
		}
		parsed, err := EncodeHint(s, Hint{kind: kind})
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	case KindVec:
		var items []Value
		if err := json.Unmarshal(w.Value, &items); err != nil {
			return fmt.Errorf("vec payload: %w", err)
		}
		*v = NewVec(items...)
		return nil
	case KindStruct:
		var fields []wireField
		if err := json.Unmarshal(w.Value, &fields); err != nil {
			return fmt.Errorf("struct payload: %w", err)
		}
		out := make([]Field, len(fields))
		for i, f := range fields {
			out[i] = Field{Name: f.Name, Value: f.Value}
		}
		*v = NewStruct(out...)
		return nil
	}
	return fmt.Errorf("unsupported value type %q", w.Type)
}

// integerText accepts an integer payload written either as a JSON string or a
// JSON number.
func integerText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", fmt.Errorf("integer payload is missing")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	if _, ok := sdkmath.NewIntFromString(string(raw)); !ok {
		return "", fmt.Errorf("integer payload %s is not an integer", raw)
	}
	return string(raw), nil
}
