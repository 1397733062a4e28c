// Package testutil fakes the narrow database/sql surface the snapshot store
// drives: ping, the state-table DDL, per-bucket upserts inside one
// transaction, and the hydration query. Rows live in an ordinary map so tests
// can pre-fill buckets and inspect what the store wrote.
package testutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync/atomic"
)

var (
	insertPattern = regexp.MustCompile(`(?is)^\s*insert\s+into\s+(\w+)\s*\(([^)]*)\)`)
	selectPattern = regexp.MustCompile(`(?is)^\s*select\s+(.+?)\s+from\s+(\w+)`)
)

// StubConn is a single stub connection shared by every sql.Conn the pool
// hands out. Failure knobs let tests fault specific steps of the store's
// open/persist cycle.
type StubConn struct {
	Statements []string                    // every ExecContext statement, in order
	Tables     map[string][]map[string]any // rows per table, column name to value
	FailExec   bool                        // fail Ping and every ExecContext
	FailBegin  bool                        // fail BeginTx
	FailCommit bool                        // fail transaction commit
	FailTables map[string]bool             // fail statements touching these tables
	RowsErr    error                       // surfaced from row iteration after the last row
}

var stubSeq atomic.Int64

// NewStubDB registers a fresh driver name backed by a stub connection and
// opens a sql.DB over it.
func NewStubDB() (*sql.DB, *StubConn) {
	conn := &StubConn{Tables: make(map[string][]map[string]any)}
	name := fmt.Sprintf("snapshotstub%d", stubSeq.Add(1))
	sql.Register(name, stubDriver{conn: conn})
	db, err := sql.Open(name, "stub")
	if err != nil {
		panic(err)
	}
	return db, conn
}

type stubDriver struct {
	conn *StubConn
}

func (d stubDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func (c *StubConn) Prepare(string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepared statements not stubbed")
}

func (c *StubConn) Close() error { return nil }

func (c *StubConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *StubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	if c.FailBegin {
		return nil, fmt.Errorf("begin failed")
	}
	return stubTx{conn: c}, nil
}

func (c *StubConn) Ping(context.Context) error {
	if c.FailExec {
		return fmt.Errorf("ping failed")
	}
	return nil
}

// ExecContext handles the two statements the store executes: the CREATE TABLE
// DDL (a recorded no-op) and the per-bucket upsert. Upserts replace any row
// sharing the first column's value, mirroring ON CONFLICT DO UPDATE.
func (c *StubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.Statements = append(c.Statements, query)
	if c.FailExec {
		return nil, fmt.Errorf("exec failed")
	}

	m := insertPattern.FindStringSubmatch(query)
	if m == nil {
		return driver.RowsAffected(0), nil
	}
	table := strings.ToLower(m[1])
	if c.FailTables[table] {
		return nil, fmt.Errorf("exec failed for %s", table)
	}
	cols := splitColumns(m[2])
	if len(cols) != len(args) {
		return nil, fmt.Errorf("%s: %d columns, %d args", table, len(cols), len(args))
	}
	row := make(map[string]any, len(cols))
	for i, col := range cols {
		row[col] = args[i].Value
	}
	if strings.Contains(strings.ToUpper(query), "ON CONFLICT") {
		key := cols[0]
		kept := c.Tables[table][:0]
		for _, existing := range c.Tables[table] {
			if existing[key] != row[key] {
				kept = append(kept, existing)
			}
		}
		c.Tables[table] = kept
	}
	c.Tables[table] = append(c.Tables[table], row)
	return driver.RowsAffected(1), nil
}

// QueryContext serves the hydration select, returning the requested columns
// of every stored row in insertion order.
func (c *StubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	m := selectPattern.FindStringSubmatch(query)
	if m == nil {
		return nil, fmt.Errorf("unsupported query: %s", query)
	}
	table := strings.ToLower(m[2])
	if c.FailTables[table] {
		return nil, fmt.Errorf("query failed for %s", table)
	}
	cols := splitColumns(m[1])
	data := make([][]driver.Value, 0, len(c.Tables[table]))
	for _, row := range c.Tables[table] {
		values := make([]driver.Value, len(cols))
		for i, col := range cols {
			values[i] = row[col]
		}
		data = append(data, values)
	}
	return &stubRows{cols: cols, data: data, err: c.RowsErr}, nil
}

type stubTx struct {
	conn *StubConn
}

func (t stubTx) Commit() error {
	if t.conn.FailCommit {
		return fmt.Errorf("commit failed")
	}
	return nil
}

func (t stubTx) Rollback() error { return nil }

type stubRows struct {
	cols []string
	data [][]driver.Value
	next int
	err  error
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.next >= len(r.data) {
		if r.err != nil {
			return r.err
		}
		return io.EOF
	}
	copy(dest, r.data[r.next])
	r.next++
	return nil
}

func splitColumns(raw string) []string {
	parts := strings.Split(raw, ",")
	cols := make([]string, 0, len(parts))
	for _, part := range parts {
		cols = append(cols, strings.ToLower(strings.TrimSpace(part)))
	}
	return cols
}
