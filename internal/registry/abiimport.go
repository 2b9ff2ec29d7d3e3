package registry

import (
	"encoding/hex"
	"fmt"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sleuth-query/sleuth/internal/domain"
)

// getAddress parses a 0x-prefixed 20-byte hex address literal exactly
// as the query grammar admits it (REGISTER ... AT <address>).
func getAddress(s string) (common.Address, error) {
	inner, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return common.Address{}, &domain.AddressError{Input: s, MissingPrefix: true}
	}

	raw, err := hex.DecodeString(inner)
	if err != nil || len(raw) != common.AddressLength {
		return common.Address{}, &domain.AddressError{Input: s}
	}
	return common.BytesToAddress(raw), nil
}

// sourceFromRegister parses a RegisterQuery's address and interface
// signatures into a Source whose mappings are zero-arity Call data
// sources, one per function name (first zero-input overload wins;
// higher-arity overloads contribute no mapping).
func sourceFromRegister(query domain.RegisterQuery) (domain.Source, error) {
	address, err := getAddress(query.Address)
	if err != nil {
		return domain.Source{}, err
	}

	mappings := map[string]domain.DataSource{}

	for _, sig := range query.Interface {
		entry, err := gethabi.ParseHumanReadableABI(sig)
		if err != nil {
			return domain.Source{}, &domain.InterfaceError{Source: query.Source, Detail: err.Error()}
		}

		entryType, _ := entry["type"].(string)
		if entryType != "function" {
			// Only function signatures contribute a queryable field;
			// events/constructors/fallbacks have no return value to call.
			continue
		}

		name, _ := entry["name"].(string)
		if name == "" {
			continue
		}
		if _, exists := mappings[name]; exists {
			// first zero-input overload already won this name
			continue
		}

		inputs, _ := entry["inputs"].([]gethabi.ArgumentMarshaling)
		if len(inputs) != 0 {
			continue
		}

		outputs, _ := entry["outputs"].([]gethabi.ArgumentMarshaling)
		resultABI, err := outputsToFieldType(outputs)
		if err != nil {
			return domain.Source{}, &domain.InterfaceError{Source: query.Source, Detail: err.Error()}
		}

		selector := crypto.Keccak256([]byte(name + "()"))[:4]

		mappings[name] = domain.DataSource{
			Kind:      domain.DSCall,
			Address:   address,
			Calldata:  selector,
			ResultABI: resultABI,
		}
	}

	return domain.Source{Name: query.Source, Mappings: mappings}, nil
}

// outputsToFieldType wraps a function's declared outputs into a
// single nested tuple FieldType, per §D.5: a Call resolution always
// contributes exactly one head word, so its outputs are never
// flattened into the caller's field list.
func outputsToFieldType(outputs []gethabi.ArgumentMarshaling) (domain.FieldType, error) {
	fields := make([]domain.TupleField, 0, len(outputs))
	for _, out := range outputs {
		pt, err := argToParamType(out)
		if err != nil {
			return domain.FieldType{}, err
		}
		fields = append(fields, domain.TupleField{Name: out.Name, Type: pt})
	}
	return domain.Elementary(domain.TupleOf(fields...)), nil
}

// argToParamType converts one ArgumentMarshaling (as produced by
// gethabi.ParseHumanReadableABI) into the compiler's own ParamType
// algebra, going through abi.NewType so nested tuples/arrays/fixed
// sizes are parsed exactly as go-ethereum's own ABI encoder would.
func argToParamType(arg gethabi.ArgumentMarshaling) (domain.ParamType, error) {
	t, err := gethabi.NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return domain.ParamType{}, fmt.Errorf("invalid output type %q: %w", arg.Type, err)
	}
	return gethTypeToParamType(t)
}

// gethTypeToParamType recursively converts a resolved go-ethereum
// abi.Type into the compiler's ParamType.
func gethTypeToParamType(t gethabi.Type) (domain.ParamType, error) {
	switch t.T {
	case gethabi.AddressTy:
		return domain.Address(), nil
	case gethabi.BytesTy:
		return domain.Bytes(), nil
	case gethabi.IntTy:
		return domain.Int(t.Size), nil
	case gethabi.UintTy:
		return domain.Uint(t.Size), nil
	case gethabi.BoolTy:
		return domain.Bool(), nil
	case gethabi.StringTy:
		return domain.StringType(), nil
	case gethabi.FixedBytesTy:
		return domain.FixedBytes(t.Size), nil
	case gethabi.SliceTy:
		elem, err := gethTypeToParamType(*t.Elem)
		if err != nil {
			return domain.ParamType{}, err
		}
		return domain.Array(elem), nil
	case gethabi.ArrayTy:
		elem, err := gethTypeToParamType(*t.Elem)
		if err != nil {
			return domain.ParamType{}, err
		}
		return domain.FixedArray(elem, t.Size), nil
	case gethabi.TupleTy:
		fields := make([]domain.TupleField, 0, len(t.TupleElems))
		for i, elemT := range t.TupleElems {
			elem, err := gethTypeToParamType(*elemT)
			if err != nil {
				return domain.ParamType{}, err
			}
			name := ""
			if i < len(t.TupleRawNames) {
				name = t.TupleRawNames[i]
			}
			fields = append(fields, domain.TupleField{Name: name, Type: elem})
		}
		return domain.TupleOf(fields...), nil
	default:
		return domain.ParamType{}, fmt.Errorf("unsupported ABI type %q", t.String())
	}
}
