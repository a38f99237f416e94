package tracelog

import (
	"context"
	"database/sql"
)

// A Reader reads recorded emissions back from a SQLite database.
type Reader struct {
	*sql.DB
}

// NewReader opens a trace database for reading.
func NewReader(dbFilename string) *Reader {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		panic(err)
	}

	return &Reader{DB: db}
}

// Emissions returns all recorded emissions in emission order.
func (r *Reader) Emissions(ctx context.Context) ([]Emission, error) {
	rows, err := r.QueryContext(ctx,
		"SELECT * FROM emissions ORDER BY Seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emissions []Emission
	for rows.Next() {
		var e Emission
		err := rows.Scan(
			&e.Seq, &e.Batch, &e.Flags, &e.FlagNames,
			&e.Target, &e.Offset, &e.Imm,
		)
		if err != nil {
			return nil, err
		}

		emissions = append(emissions, e)
	}

	return emissions, rows.Err()
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.DB.Close()
}
