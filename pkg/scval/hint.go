package scval

import (
	"fmt"
	"strings"
)

// Hint declares the expected tag at an argument position. The zero Hint is
// Any, which falls back to the encoding heuristic.
type Hint struct {
	kind     Kind
	any      bool
	optional bool
}

// Declared hints.
var (
	HintAny     = Hint{any: true}
	HintAddress = Hint{kind: KindAddress}
	HintSymbol  = Hint{kind: KindSymbol}
	HintString  = Hint{kind: KindString}
	HintI128    = Hint{kind: KindI128}
	HintU64     = Hint{kind: KindU64}
	HintU32     = Hint{kind: KindU32}
	HintBool    = Hint{kind: KindBool}
)

// Optional marks a position as accepting an absent value, encoded as Void.
func Optional(h Hint) Hint {
	h.optional = true
	return h
}

// IsAny reports whether the position uses the heuristic.
func (h Hint) IsAny() bool {
	return h.any || h.kind == KindVoid
}

// IsOptional reports whether nil is accepted at the position.
func (h Hint) IsOptional() bool { return h.optional }

// Kind returns the declared tag. It is meaningless for Any hints.
func (h Hint) Kind() Kind { return h.kind }

func (h Hint) String() string {
	name := h.kind.String()
	if h.IsAny() {
		name = "any"
	}
	if h.optional {
		return "option<" + name + ">"
	}
	return name
}

// Param is one declared positional parameter of a contract function.
type Param struct {
	Name string
	Hint Hint
}

// Schema is the ordered parameter list of a contract function.
type Schema []Param

// Encode converts args positionally according to the schema. The number of
// arguments must match the number of parameters.
func (s Schema) Encode(args ...interface{}) ([]Value, error) {
	if len(args) != len(s) {
		return nil, &EncodingError{
			Index:  -1,
			Reason: fmt.Sprintf("expected %d arguments (%s), got %d", len(s), strings.Join(s.Names(), ", "), len(args)),
		}
	}
	out := make([]Value, len(args))
	for i, arg := range args {
		v, err := EncodeHint(arg, s[i].Hint)
		if err != nil {
			return nil, at(err, i, s[i].Name, s[i].Hint)
		}
		out[i] = v
	}
	return out, nil
}

// Names returns the parameter names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}
