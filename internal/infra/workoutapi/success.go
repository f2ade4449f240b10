package workoutapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// reportsFailure is true only when expr resolves to the JSON literal false.
// Missing fields, other types and non-JSON bodies all count as success.
func reportsFailure(body []byte, expr string) bool {
	if len(bytes.TrimSpace(body)) == 0 || strings.TrimSpace(expr) == "" {
		return false
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return false
	}

	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return false
	}

	b, ok := v.(bool)
	return ok && !b
}
