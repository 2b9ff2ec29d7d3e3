package yul

import "fmt"

// prefixFormat is the fixed Yul object wrapper, byte-for-byte except
// the dispatcher's case label: instead of the hard-coded 0x2c46b205,
// %s is filled in by the derived query() selector.
const prefixFormat = `
object "Query" {
    code {
        // Store the creator in slot zero.
        sstore(0, caller())

        // Deploy the contract
        datacopy(0, dataoffset("runtime"), datasize("runtime"))
        return(0, datasize("runtime"))
    }
    object "runtime" {
        code {
            // Dispatcher
            switch selector()
            case 0x%s /* "query()" */ {
                `

// suffix is the fixed Yul object wrapper's closing half, byte-for-byte.
const suffix = `
            }
            default {
                revert(0, 0)
            }

            /* ---------- calldata encoding functions ---------- */
            function returnUint(v) {
                mstore(0, v)
                return(0, 0x20)
            }
            function returnTrue() {
                returnUint(1)
            }

            /* ---------- calldata decoding functions ----------- */
            function selector() -> s {
                s := div(calldataload(0), 0x100000000000000000000000000000000000000000000000000000000)
            }
        }
    }
}`

func prefix(selectorHex string) string {
	return fmt.Sprintf(prefixFormat, selectorHex)
}
