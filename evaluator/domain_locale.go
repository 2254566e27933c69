package evaluator

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func init() {
	builtins["parseDate"] = &Builtin{Fn: parseDateBuiltin}
	builtins["formatDate"] = &Builtin{Fn: formatDateBuiltin}
	builtins["formatNumber"] = &Builtin{Fn: formatNumberBuiltin}
}

// parseDateBuiltin parses a free-form date string with dateparse.ParseAny
// and returns its Unix timestamp.
func parseDateBuiltin(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	text, ok := args[0].(*String)
	if !ok {
		return newError("argument to 'parseDate' not supported, got %s", args[0].Type())
	}

	t, err := dateparse.ParseAny(text.Value)
	if err != nil {
		return &Error{Message: "parseDate: " + err.Error()}
	}
	return &Integer{Value: t.Unix()}
}

// formatDateBuiltin formats a Unix timestamp with monday.Format, falling
// back to en_US on an unrecognized locale string.
func formatDateBuiltin(args ...Object) Object {
	if len(args) != 3 {
		return newError("wrong number of arguments. got=%d, want=3", len(args))
	}
	seconds, ok := args[0].(*Integer)
	if !ok {
		return newError("argument to 'formatDate' not supported, got %s", args[0].Type())
	}
	layout, ok := args[1].(*String)
	if !ok {
		return newError("argument to 'formatDate' not supported, got %s", args[1].Type())
	}
	locale, ok := args[2].(*String)
	if !ok {
		return newError("argument to 'formatDate' not supported, got %s", args[2].Type())
	}

	t := time.Unix(seconds.Value, 0).UTC()
	loc := resolveMondayLocale(locale.Value)
	return &String{Value: monday.Format(t, layout.Value, loc)}
}

func resolveMondayLocale(name string) monday.Locale {
	locales := map[string]monday.Locale{
		"en_us": monday.LocaleEnUS,
		"en_gb": monday.LocaleEnGB,
		"de_de": monday.LocaleDeDE,
		"fr_fr": monday.LocaleFrFR,
		"es_es": monday.LocaleEsES,
		"it_it": monday.LocaleItIT,
		"pt_pt": monday.LocalePtPT,
		"ja_jp": monday.LocaleJaJP,
		"zh_cn": monday.LocaleZhCN,
	}

	key := strings.ToLower(name)
	if loc, ok := locales[key]; ok {
		return loc
	}
	return monday.LocaleEnUS
}

// formatNumberBuiltin formats an Integer with golang.org/x/text/message,
// resolving a language.Tag from the locale string and falling back to
// American English on a bad tag.
func formatNumberBuiltin(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	value, ok := args[0].(*Integer)
	if !ok {
		return newError("argument to 'formatNumber' not supported, got %s", args[0].Type())
	}
	locale, ok := args[1].(*String)
	if !ok {
		return newError("argument to 'formatNumber' not supported, got %s", args[1].Type())
	}

	tag, err := language.Parse(locale.Value)
	if err != nil {
		tag = language.AmericanEnglish
	}

	p := message.NewPrinter(tag)
	return &String{Value: p.Sprintf("%v", number.Decimal(value.Value))}
}
