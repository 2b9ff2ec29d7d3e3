// Package abi renders the ordered Resolution list produced by the
// resolver into a single Solidity ABI tuple type string.
package abi

import (
	"fmt"
	"strings"

	"github.com/sleuth-query/sleuth/internal/domain"
)

// Synthesize builds "tuple(<fields>)" from the resolved columns, in
// order. A named Resolution renders as "<type> <name>"; an unnamed one
// renders as bare "<type>".
func Synthesize(resolutions []domain.Resolution) string {
	fields := make([]string, len(resolutions))
	for i, r := range resolutions {
		t := renderFieldType(r.Abi)
		if r.Name != nil {
			fields[i] = t + " " + *r.Name
		} else {
			fields[i] = t
		}
	}
	return "tuple(" + strings.Join(fields, ",") + ")"
}

func renderFieldType(ft domain.FieldType) string {
	return renderParamType(ft.Elementary)
}

// RenderType renders a single FieldType as a Solidity ABI type string,
// without the enclosing tuple Synthesize wraps a resolution list in.
// Used by introspection commands that show one mapping's type at a
// time rather than a whole resolved row.
func RenderType(ft domain.FieldType) string {
	return renderFieldType(ft)
}

// renderParamType renders a ParamType per the Solidity ABI grammar.
// Tuple and FixedArray recurse rather than aborting: a Call
// resolution's outputs are wrapped as a nested tuple (§D.5), and the
// ABI synthesizer must be able to render it without the caller ever
// flattening it into the outer field list first.
func renderParamType(p domain.ParamType) string {
	switch p.Kind {
	case domain.KindAddress:
		return "address"
	case domain.KindBytes:
		return "bytes"
	case domain.KindInt:
		return fmt.Sprintf("int%d", p.Bits)
	case domain.KindUint:
		return fmt.Sprintf("uint%d", p.Bits)
	case domain.KindBool:
		return "bool"
	case domain.KindString:
		return "string"
	case domain.KindArray:
		return renderParamType(*p.Elem) + "[]"
	case domain.KindFixedBytes:
		return fmt.Sprintf("bytes%d", p.Size)
	case domain.KindFixedArray:
		return fmt.Sprintf("%s[%d]", renderParamType(*p.Elem), p.Size)
	case domain.KindTuple:
		fields := make([]string, len(p.Tuple))
		for i, f := range p.Tuple {
			if f.Name != "" {
				fields[i] = renderParamType(f.Type) + " " + f.Name
			} else {
				fields[i] = renderParamType(f.Type)
			}
		}
		return "tuple(" + strings.Join(fields, ",") + ")"
	default:
		panic(fmt.Sprintf("abi: unreachable ParamType kind %d", p.Kind))
	}
}
