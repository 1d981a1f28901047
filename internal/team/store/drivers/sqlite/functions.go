package sqlite

import (
	"database/sql/driver"
	"strings"

	msqlite "modernc.org/sqlite"
)

// unicodeLowerFunc folds case over the whole Unicode range. The built-in
// lower() only folds ASCII, which misses accented capitals.
const unicodeLowerFunc = "unicode_lower"

func init() {
	msqlite.MustRegisterDeterministicScalarFunction(unicodeLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		// NULL and numbers pass through unchanged.
		return v, nil
	}
}
