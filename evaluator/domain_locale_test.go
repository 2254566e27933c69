package evaluator

import "testing"

func TestParseDateBuiltin(t *testing.T) {
	result := parseDateBuiltin(&String{Value: "2021-01-02"})
	seconds, ok := result.(*Integer)
	if !ok {
		t.Fatalf("parseDate did not return an Integer. got=%T (%+v)", result, result)
	}
	if seconds.Value <= 0 {
		t.Errorf("expected a positive Unix timestamp, got %d", seconds.Value)
	}
}

func TestParseDateBuiltinBadInput(t *testing.T) {
	result := parseDateBuiltin(&String{Value: "not a date at all"})
	if _, ok := result.(*Error); !ok {
		t.Fatalf("expected an Error. got=%T (%+v)", result, result)
	}
}

func TestFormatDateBuiltin(t *testing.T) {
	parsed := parseDateBuiltin(&String{Value: "2021-01-02"})
	seconds := parsed.(*Integer)

	result := formatDateBuiltin(seconds, &String{Value: "2006-01-02"}, &String{Value: "en_US"})
	str, ok := result.(*String)
	if !ok {
		t.Fatalf("formatDate did not return a String. got=%T (%+v)", result, result)
	}
	if str.Value != "2021-01-02" {
		t.Errorf("expected %q, got %q", "2021-01-02", str.Value)
	}
}

func TestFormatDateBuiltinUnknownLocaleFallsBackToEnUS(t *testing.T) {
	loc := resolveMondayLocale("xx_yy")
	if loc != resolveMondayLocale("en_us") {
		t.Errorf("unrecognized locale did not fall back to en_US")
	}
}

func TestFormatNumberBuiltin(t *testing.T) {
	result := formatNumberBuiltin(&Integer{Value: 1000000}, &String{Value: "en_US"})
	str, ok := result.(*String)
	if !ok {
		t.Fatalf("formatNumber did not return a String. got=%T (%+v)", result, result)
	}
	if str.Value != "1,000,000" {
		t.Errorf("expected %q, got %q", "1,000,000", str.Value)
	}
}

func TestFormatNumberBuiltinWrongArity(t *testing.T) {
	result := formatNumberBuiltin(&Integer{Value: 1})
	errObj, ok := result.(*Error)
	if !ok {
		t.Fatalf("expected an Error. got=%T (%+v)", result, result)
	}
	if errObj.Message != "wrong number of arguments. got=1, want=2" {
		t.Errorf("wrong error message. got=%q", errObj.Message)
	}
}
