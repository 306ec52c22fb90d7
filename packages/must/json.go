package must

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// convertBracketNotation converts array bracket notation to gjson dot notation
// e.g., "[0].id" -> "0.id", "items[0].tags[1]" -> "items.0.tags.1"
func convertBracketNotation(path string) string {
	return strings.TrimPrefix(bracketIndex.ReplaceAllString(path, ".$1"), ".")
}

// jsonBytes accepts a JSON string, raw bytes or any value encoding/json can
// marshal.
func jsonBytes(doc any) ([]byte, error) {
	switch v := doc.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		return json.Marshal(doc)
	}
}

func lookupJSON(t TestingT, doc any, path string) (gjson.Result, bool) {
	t.Helper()
	data, err := jsonBytes(doc)
	if err != nil {
		report(t, &Failure{Message: "failed to marshal document", Err: err})
		return gjson.Result{}, false
	}
	if !gjson.ValidBytes(data) {
		report(t, &Failure{Message: "document is not valid JSON: " + formatter().Value(string(data))})
		return gjson.Result{}, false
	}
	if path == "" {
		return gjson.ParseBytes(data), true
	}
	result := gjson.GetBytes(data, convertBracketNotation(path))
	if !result.Exists() {
		report(t, &Failure{Message: fmt.Sprintf("path %q not found in document", path)})
		return gjson.Result{}, false
	}
	return result, true
}

// HaveJSONPath asserts that path (gjson syntax, [N] indexes allowed) exists
// in the JSON document.
func HaveJSONPath(t TestingT, doc any, path string) {
	t.Helper()
	lookupJSON(t, doc, path)
}

// JSONPath asserts that the value at path equals expected. Numbers compare
// by value, so 30, int64(30) and 30.0 all match a JSON 30.
func JSONPath(t TestingT, doc any, path string, expected any) {
	t.Helper()
	result, ok := lookupJSON(t, doc, path)
	if !ok {
		return
	}
	if actual := result.Value(); !looseEqual(actual, expected) {
		report(t, &Failure{
			Message:  fmt.Sprintf("unexpected value at %q", path),
			Expected: expected,
			Actual:   actual,
			Compared: true,
		})
	}
}

// MatchSchema validates doc against the JSON Schema stored at schemaPath.
func MatchSchema(t TestingT, doc any, schemaPath string) {
	t.Helper()
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		report(t, &Failure{Message: "failed to read schema file", Err: err})
		return
	}
	data, err := jsonBytes(doc)
	if err != nil {
		report(t, &Failure{Message: "failed to marshal document", Err: err})
		return
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaData), gojsonschema.NewBytesLoader(data))
	if err != nil {
		report(t, &Failure{Message: "schema validation error", Err: err})
		return
	}
	if result.Valid() {
		return
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	report(t, &Failure{Message: "schema validation failed: " + strings.Join(errs, "; ")})
}

// BeJSONLike asserts that two JSON documents are semantically equal.
func BeJSONLike(t TestingT, actual, expected string) {
	t.Helper()
	require.JSONEq(t, expected, actual)
}
