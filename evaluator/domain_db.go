package evaluator

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DBConnection wraps an open database handle. It is never produced by
// core syntax, only by the dbOpen builtin.
type DBConnection struct {
	DB     *sql.DB
	Driver string
	DSN    string
}

func (c *DBConnection) Type() ObjectType { return DB_CONNECTION_OBJ }
func (c *DBConnection) Inspect() string  { return "<db connection: " + c.Driver + ">" }

// dbConnCache is a small TTL'd connection cache keyed by DSN, so repeated
// dbOpen calls for the same DSN reuse one *sql.DB instead of leaking
// connections.
type dbConnCache struct {
	mu    sync.Mutex
	conns map[string]*cachedDBConn
	ttl   time.Duration
}

type cachedDBConn struct {
	conn      *DBConnection
	createdAt time.Time
}

func newDBConnCache(ttl time.Duration) *dbConnCache {
	return &dbConnCache{conns: make(map[string]*cachedDBConn), ttl: ttl}
}

func (c *dbConnCache) get(dsn string) (*DBConnection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, ok := c.conns[dsn]
	if !ok {
		return nil, false
	}
	if time.Since(cached.createdAt) > c.ttl {
		cached.conn.DB.Close()
		delete(c.conns, dsn)
		return nil, false
	}
	return cached.conn, true
}

func (c *dbConnCache) put(dsn string, conn *DBConnection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conns[dsn] = &cachedDBConn{conn: conn, createdAt: time.Now()}
}

func (c *dbConnCache) evict(dsn string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.conns[dsn]; ok {
		cached.conn.DB.Close()
		delete(c.conns, dsn)
	}
}

var sqliteCache = newDBConnCache(30 * time.Minute)

func init() {
	builtins["dbOpen"] = &Builtin{Fn: dbOpen}
	builtins["dbExec"] = &Builtin{Fn: dbExec}
	builtins["dbQuery"] = &Builtin{Fn: dbQuery}
	builtins["dbClose"] = &Builtin{Fn: dbClose}
}

func dbOpen(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	dsn, ok := args[0].(*String)
	if !ok {
		return newError("argument to 'dbOpen' not supported, got %s", args[0].Type())
	}

	if conn, ok := sqliteCache.get(dsn.Value); ok {
		return conn
	}

	db, err := sql.Open("sqlite", dsn.Value)
	if err != nil {
		return &Error{Message: "db error: " + err.Error()}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &Error{Message: "db error: " + err.Error()}
	}

	conn := &DBConnection{DB: db, Driver: "sqlite", DSN: dsn.Value}
	sqliteCache.put(dsn.Value, conn)
	return conn
}

func dbExec(args ...Object) Object {
	if len(args) < 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	conn, ok := args[0].(*DBConnection)
	if !ok {
		return newError("argument to 'dbExec' not supported, got %s", args[0].Type())
	}
	query, ok := args[1].(*String)
	if !ok {
		return newError("argument to 'dbExec' not supported, got %s", args[1].Type())
	}

	params, err := toDriverParams(args[2:])
	if err != nil {
		return err
	}

	result, execErr := conn.DB.Exec(query.Value, params...)
	if execErr != nil {
		return &Error{Message: "db error: " + execErr.Error()}
	}

	affected, _ := result.RowsAffected()
	return &Integer{Value: affected}
}

func dbQuery(args ...Object) Object {
	if len(args) < 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	conn, ok := args[0].(*DBConnection)
	if !ok {
		return newError("argument to 'dbQuery' not supported, got %s", args[0].Type())
	}
	query, ok := args[1].(*String)
	if !ok {
		return newError("argument to 'dbQuery' not supported, got %s", args[1].Type())
	}

	params, perr := toDriverParams(args[2:])
	if perr != nil {
		return perr
	}

	rows, queryErr := conn.DB.Query(query.Value, params...)
	if queryErr != nil {
		return &Error{Message: "db error: " + queryErr.Error()}
	}
	defer rows.Close()

	columns, colErr := rows.Columns()
	if colErr != nil {
		return &Error{Message: "db error: " + colErr.Error()}
	}

	var results []Object
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if scanErr := rows.Scan(valuePtrs...); scanErr != nil {
			return &Error{Message: "db error: " + scanErr.Error()}
		}
		results = append(results, rowToHash(columns, values))
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return &Error{Message: "db error: " + rowsErr.Error()}
	}

	return &Array{Elements: results}
}

func dbClose(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	conn, ok := args[0].(*DBConnection)
	if !ok {
		return newError("argument to 'dbClose' not supported, got %s", args[0].Type())
	}
	sqliteCache.evict(conn.DSN)
	return NULL
}

func toDriverParams(args []Object) ([]any, *Error) {
	params := make([]any, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case *Integer:
			params = append(params, v.Value)
		case *String:
			params = append(params, v.Value)
		case *Boolean:
			params = append(params, v.Value)
		case *Null:
			params = append(params, nil)
		default:
			return nil, newError("argument to 'dbQuery' not supported, got %s", a.Type())
		}
	}
	return params, nil
}

func rowToHash(columns []string, values []any) *Hash {
	pairs := make(map[HashKey]HashPair, len(columns))
	for i, col := range columns {
		key := &String{Value: col}
		pairs[key.HashKey()] = HashPair{Key: key, Value: goValueToObject(values[i])}
	}
	return &Hash{Pairs: pairs}
}

func goValueToObject(v any) Object {
	switch v := v.(type) {
	case nil:
		return NULL
	case int64:
		return &Integer{Value: v}
	case float64:
		return &Integer{Value: int64(v)}
	case bool:
		return nativeBoolToBooleanObject(v)
	case string:
		return &String{Value: v}
	case []byte:
		return &String{Value: string(v)}
	default:
		return &String{Value: fmt.Sprint(v)}
	}
}
