package evaluator

import "testing"

func TestDBOpenExecQueryClose(t *testing.T) {
	opened := dbOpen(&String{Value: "file::memory:?cache=shared"})
	conn, ok := opened.(*DBConnection)
	if !ok {
		t.Fatalf("dbOpen did not return a DBConnection. got=%T (%+v)", opened, opened)
	}
	defer dbClose(conn)

	created := dbExec(conn, &String{Value: "CREATE TABLE greetings (id INTEGER, message TEXT)"})
	if errObj, ok := created.(*Error); ok {
		t.Fatalf("CREATE TABLE failed: %s", errObj.Message)
	}

	inserted := dbExec(conn, &String{Value: "INSERT INTO greetings (id, message) VALUES (?, ?)"}, &Integer{Value: 1}, &String{Value: "hello"})
	affected, ok := inserted.(*Integer)
	if !ok {
		t.Fatalf("dbExec did not return an Integer. got=%T (%+v)", inserted, inserted)
	}
	if affected.Value != 1 {
		t.Errorf("expected 1 row affected, got %d", affected.Value)
	}

	queried := dbQuery(conn, &String{Value: "SELECT id, message FROM greetings WHERE id = ?"}, &Integer{Value: 1})
	rows, ok := queried.(*Array)
	if !ok {
		t.Fatalf("dbQuery did not return an Array. got=%T (%+v)", queried, queried)
	}
	if len(rows.Elements) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows.Elements))
	}

	row, ok := rows.Elements[0].(*Hash)
	if !ok {
		t.Fatalf("row is not a Hash. got=%T (%+v)", rows.Elements[0], rows.Elements[0])
	}

	messageKey := (&String{Value: "message"}).HashKey()
	pair, ok := row.Pairs[messageKey]
	if !ok {
		t.Fatalf("row has no 'message' column")
	}
	message, ok := pair.Value.(*String)
	if !ok || message.Value != "hello" {
		t.Errorf("expected message %q, got %+v", "hello", pair.Value)
	}
}

func TestDBOpenCachesConnectionsByDSN(t *testing.T) {
	dsn := &String{Value: "file::memory:?cache=shared&mode=rwc&_txlock=immediate"}
	first := dbOpen(dsn)
	conn1, ok := first.(*DBConnection)
	if !ok {
		t.Fatalf("dbOpen did not return a DBConnection. got=%T (%+v)", first, first)
	}
	defer dbClose(conn1)

	second := dbOpen(dsn)
	conn2, ok := second.(*DBConnection)
	if !ok {
		t.Fatalf("dbOpen did not return a DBConnection. got=%T (%+v)", second, second)
	}

	if conn1.DB != conn2.DB {
		t.Error("dbOpen with the same DSN did not reuse the cached connection")
	}
}

func TestDBWrongArgumentType(t *testing.T) {
	result := dbOpen(&Integer{Value: 1})
	errObj, ok := result.(*Error)
	if !ok {
		t.Fatalf("expected an Error. got=%T (%+v)", result, result)
	}
	if errObj.Message != "argument to 'dbOpen' not supported, got INTEGER" {
		t.Errorf("wrong error message. got=%q", errObj.Message)
	}
}
