// Package yul emits the Yul object that materializes a resolved query
// into EVM memory and returns its ABI-encoded tuple.
package yul

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sleuth-query/sleuth/internal/domain"
)

// padZeroes right-pads arr with zero bytes up to 32 bytes. arr must be
// at most 32 bytes long.
func padZeroes(arr []byte) [32]byte {
	var b [32]byte
	copy(b[:], arr)
	return b
}

// copyBytes appends mstore instructions writing bytes into the tail
// region starting at `free`, 32 bytes at a time, right-zero-padding
// the final chunk. When storeLen is true a length word precedes the
// data and `free` is advanced past it first.
func copyBytes(tokens []string, data []byte, storeLen bool) ([]string, int, int) {
	bytesLen := len(data)

	if storeLen {
		tokens = append(tokens, fmt.Sprintf("mstore(free, %d)", bytesLen))
		tokens = append(tokens, "free := add(free, 0x20)")
	}

	chunks := 0
	for i := 0; i < len(data); i += 32 {
		end := i + 32
		if end > len(data) {
			end = len(data)
		}
		padded := padZeroes(data[i:end])
		tokens = append(tokens, fmt.Sprintf("mstore(add(free,%d),0x%s)", chunks*32, hex.EncodeToString(padded[:])))
		chunks++
	}

	return tokens, bytesLen, chunks
}

// deriveYulFunction emits the body instructions (without the template
// wrapper) for the given resolutions, in order.
func deriveYulFunction(resolutions []domain.Resolution) ([]string, error) {
	tokens := []string{
		"let res := 0x80",
		fmt.Sprintf("let free := add(0x80,mul(%d,0x20))", len(resolutions)),
	}

	for _, r := range resolutions {
		switch r.DataSource.Kind {
		case domain.DSBlockNumber:
			tokens = append(tokens, "mstore(res, number())")
			tokens = append(tokens, "res := add(res, 0x20)")

		case domain.DSNumber:
			tokens = append(tokens, fmt.Sprintf("mstore(res, %d)", r.DataSource.Number))
			tokens = append(tokens, "res := add(res, 0x20)")

		case domain.DSString:
			var chunks int
			tokens, _, chunks = copyBytes(tokens, []byte(r.DataSource.Str), true)
			tokens = append(tokens, "mstore(res, sub(free,add(0x80,0x20)))")
			tokens = append(tokens, fmt.Sprintf("free := add(free, %d)", chunks*32))
			tokens = append(tokens, "res := add(res, 0x20)")

		case domain.DSCall:
			var bytesLen int
			tokens, bytesLen, _ = copyBytes(tokens, r.DataSource.Calldata, false)
			addrHex := "0x" + hex.EncodeToString(r.DataSource.Address.Bytes())
			tokens = append(tokens, fmt.Sprintf("pop(call(gas(), %s, 0, free, %d, free, 0))", addrHex, bytesLen))
			tokens = append(tokens, "returndatacopy(free, 0, returndatasize())")
			tokens = append(tokens, "mstore(res, free)")
			tokens = append(tokens, "free := add(free, returndatasize())")
			tokens = append(tokens, "res := add(res, 0x20)")

		case domain.DSAddress:
			return nil, &domain.UnsupportedError{Msg: "address data sources cannot be materialized in Yul"}

		default:
			return nil, &domain.UnsupportedError{Msg: "unrecognized data source kind in code generator"}
		}
	}

	tokens = append(tokens, "return(0x80,sub(free,0x80))")
	return tokens, nil
}

// QuerySelector returns the 4-byte dispatcher selector of the
// generated contract's sole entry point, `query()`. It is derived
// rather than hard-coded so the constant cannot drift from the
// function name it represents.
func QuerySelector() []byte {
	return crypto.Keccak256([]byte("query()"))[:4]
}

// Generate emits the complete Yul object for the given resolutions:
// the fixed prefix (with the derived query() selector spliced in), the
// generated body, and the fixed suffix.
func Generate(resolutions []domain.Resolution) (string, error) {
	tokens, err := deriveYulFunction(resolutions)
	if err != nil {
		return "", err
	}

	inner := strings.Join(tokens, "\n                ")
	selectorHex := hex.EncodeToString(QuerySelector())

	return prefix(selectorHex) + inner + suffix, nil
}
