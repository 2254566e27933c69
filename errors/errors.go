// Package errors provides a small catalog-based structured error type used
// for parser diagnostics.
package errors

import (
	"bytes"
	"fmt"
	"text/template"
)

// ErrorDef defines one catalog entry: a message template rendered against
// the Data supplied at construction time.
type ErrorDef struct {
	Template string
}

// Catalog maps stable error codes to their message templates.
var Catalog = map[string]ErrorDef{
	"PARSE-0001": {Template: "expected next token to be {{.Expected}}, got {{.Got}} instead"},
	"PARSE-0002": {Template: "no prefix parse function for {{.Token}} found"},
	"PARSE-0003": {Template: "could not parse {{.Literal}} as integer"},
}

// MonkeyError is a structured diagnostic: a stable code plus a rendered
// message. It implements the error interface.
type MonkeyError struct {
	Code    string
	Message string
}

func (e *MonkeyError) Error() string { return e.Message }

// New renders the catalog entry for code against data and returns it as a
// *MonkeyError. An unknown code renders as its own message so a caller never
// silently loses a diagnostic to a typo.
func New(code string, data map[string]any) *MonkeyError {
	def, ok := Catalog[code]
	if !ok {
		return &MonkeyError{Code: code, Message: fmt.Sprintf("unknown error code %s", code)}
	}

	tmpl, err := template.New(code).Parse(def.Template)
	if err != nil {
		return &MonkeyError{Code: code, Message: def.Template}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return &MonkeyError{Code: code, Message: def.Template}
	}

	return &MonkeyError{Code: code, Message: buf.String()}
}
