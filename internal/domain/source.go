package domain

import "github.com/ethereum/go-ethereum/common"

// ParamKind enumerates the Solidity elementary and composite types a
// Resolution's data can carry. It is the compiler's own enumeration of
// the Solidity ABI type algebra; the registry converts go-ethereum's
// abi.Type into it (registry.gethTypeToParamType).
type ParamKind int

const (
	KindAddress ParamKind = iota
	KindBytes
	KindInt
	KindUint
	KindBool
	KindString
	KindArray
	KindFixedBytes
	KindFixedArray
	KindTuple
)

// TupleField is one named or unnamed member of a Tuple ParamType.
type TupleField struct {
	Name string // may be empty for an unnamed output
	Type ParamType
}

// ParamType is the ABI type of one resolved field. Array, FixedBytes,
// FixedArray and Tuple recurse through Elem/Size/Tuple; the other
// kinds are leaves.
type ParamType struct {
	Kind  ParamKind
	Bits  int // Int/Uint bit width
	Size  int // FixedBytes/FixedArray length
	Elem  *ParamType
	Tuple []TupleField
}

func Address() ParamType    { return ParamType{Kind: KindAddress} }
func Bytes() ParamType      { return ParamType{Kind: KindBytes} }
func Bool() ParamType       { return ParamType{Kind: KindBool} }
func StringType() ParamType { return ParamType{Kind: KindString} }
func Int(bits int) ParamType  { return ParamType{Kind: KindInt, Bits: bits} }
func Uint(bits int) ParamType { return ParamType{Kind: KindUint, Bits: bits} }
func FixedBytes(size int) ParamType { return ParamType{Kind: KindFixedBytes, Size: size} }
func Array(elem ParamType) ParamType {
	e := elem
	return ParamType{Kind: KindArray, Elem: &e}
}
func FixedArray(elem ParamType, size int) ParamType {
	e := elem
	return ParamType{Kind: KindFixedArray, Elem: &e, Size: size}
}
func TupleOf(fields ...TupleField) ParamType {
	return ParamType{Kind: KindTuple, Tuple: fields}
}

// FieldType is the ABI type attached to a Resolution. The grammar and
// data model distinguish it from a bare ParamType to leave room for
// non-elementary field kinds; today Elementary is the only variant
// that is ever constructed.
type FieldType struct {
	Elementary ParamType
}

func Elementary(p ParamType) FieldType { return FieldType{Elementary: p} }

// DataSourceKind discriminates the variants of DataSource.
type DataSourceKind int

const (
	DSBlockNumber DataSourceKind = iota
	DSNumber
	DSString
	DSAddress
	DSCall
)

func (k DataSourceKind) String() string {
	switch k {
	case DSBlockNumber:
		return "block_number"
	case DSNumber:
		return "number"
	case DSString:
		return "string"
	case DSAddress:
		return "address"
	case DSCall:
		return "call"
	default:
		return "unknown"
	}
}

// DataSource is the concrete piece of chain or literal data a
// resolved selection reads from. Exactly one of the fields below is
// meaningful, selected by Kind.
type DataSource struct {
	Kind DataSourceKind

	Number  uint64 // DSNumber
	Str     string // DSString
	AddrLit string // DSAddress: original 0x-prefixed literal text

	// DSCall
	Address   common.Address
	Calldata  []byte
	ResultABI FieldType
}

// ABI returns the ABI field type this data source produces. Every
// resolved Resolution satisfies Resolution.Abi == Resolution.DataSource.ABI().
func (d DataSource) ABI() (FieldType, error) {
	switch d.Kind {
	case DSBlockNumber, DSNumber:
		return Elementary(Uint(256)), nil
	case DSString:
		return Elementary(StringType()), nil
	case DSAddress:
		return FieldType{}, &UnsupportedError{Msg: "address data sources have no ABI representation"}
	case DSCall:
		return d.ResultABI, nil
	default:
		return FieldType{}, &UnsupportedError{Msg: "unknown data source kind"}
	}
}

// Source is one entry of a query's FROM clause plus the variable
// mappings a REGISTER or builtin source supplies for qualified
// selections (`source.var`).
type Source struct {
	Name     string
	Mappings map[string]DataSource
}

// Resolution is one concrete, fully-resolved column: an optional
// output name, its ABI type, and the data source that produces it.
type Resolution struct {
	Name       *string
	Abi        FieldType
	DataSource DataSource
}
