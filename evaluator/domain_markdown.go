package evaluator

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

func init() {
	builtins["markdown"] = &Builtin{Fn: markdownBuiltin}
}

// markdownBuiltin renders GFM markdown to HTML.
func markdownBuiltin(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	text, ok := args[0].(*String)
	if !ok {
		return newError("argument to 'markdown' not supported, got %s", args[0].Type())
	}

	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(text.Value), &buf); err != nil {
		return &Error{Message: "markdown: " + err.Error()}
	}
	return &String{Value: buf.String()}
}
