// Package tracelog records resolved synchronization commands into a SQLite
// database so that emission sequences can be inspected after a run.
package tracelog

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

// An Emission is one recorded synchronization command.
type Emission struct {
	Seq       int
	Batch     string
	Flags     uint32
	FlagNames string
	Target    string
	Offset    uint32
	Imm       uint64
}

const emissionTableSQL = `CREATE TABLE emissions (
	Seq INTEGER,
	Batch TEXT,
	Flags INTEGER,
	FlagNames TEXT,
	Target TEXT,
	Offset INTEGER,
	Imm INTEGER
);`

// A Recorder buffers recorded emissions and writes them to a SQLite
// database in batches. A Recorder must be created with NewRecorder.
type Recorder struct {
	*sql.DB

	entries   []Emission
	batchSize int
	seq       int
}

// NewRecorder creates a recorder writing to path+".sqlite3". An empty path
// picks a unique name. The recorder flushes on process exit.
func NewRecorder(path string) *Recorder {
	if path == "" {
		path = "pipecontrol_trace_" + xid.New().String()
	}

	filename := path + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r := &Recorder{
		DB:        db,
		batchSize: 10000,
	}
	r.mustExecute(emissionTableSQL)

	atexit.Register(func() { r.Flush() })

	return r
}

// Record buffers one resolved request emitted on the batch.
func (r *Recorder) Record(b *hw.Batch, req pipecontrol.Request) {
	target := ""
	if req.Target != nil {
		target = req.Target.Name()
	}

	r.entries = append(r.entries, Emission{
		Seq:       r.seq,
		Batch:     b.Name(),
		Flags:     uint32(req.Flags),
		FlagNames: req.Flags.String(),
		Target:    target,
		Offset:    req.Offset,
		Imm:       req.Imm,
	})
	r.seq++

	if len(r.entries) >= r.batchSize {
		r.Flush()
	}
}

// Flush writes all buffered emissions to the database.
func (r *Recorder) Flush() {
	if len(r.entries) == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	stmt, err := r.Prepare(
		"INSERT INTO emissions VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		panic(err)
	}
	defer stmt.Close()

	for _, e := range r.entries {
		_, err := stmt.Exec(
			e.Seq, e.Batch, e.Flags, e.FlagNames,
			e.Target, e.Offset, e.Imm,
		)
		if err != nil {
			panic(err)
		}
	}

	r.entries = nil
}

// Close flushes buffered emissions and closes the database.
func (r *Recorder) Close() error {
	r.Flush()
	return r.DB.Close()
}

func (r *Recorder) mustExecute(query string) sql.Result {
	res, err := r.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
