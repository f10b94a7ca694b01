package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/eotd/internal/bind"
	"git.lost.host/meutraa/eotd/internal/game"
)

// Store persists key bindings and play results in a single sqlite
// database. It is the black-box boundary the core talks to through
// LoadBindings/SaveBindings and SaveResult/LoadResults.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, err
	}

	initStatement := `
	create table if not exists bindings
	  (
		  button_id text not null primary key,
		  lane integer not null
	  );
	create table if not exists results
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  score integer,
		  percent real,
		  max_combo integer,
		  counts bytearray,
		  failed integer
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() {
	if nil != s.db {
		s.db.Close()
	}
}

// HashChart identifies a chart by its note content, so renaming the
// file keeps its result history.
func HashChart(c *game.Chart) string {
	h := sha256.New()
	fmt.Fprintln(h, c.Title, c.Lanes)
	for _, n := range c.Notes {
		fmt.Fprintln(h, n.Lane, int64(n.Time))
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// SaveBindings replaces the stored layout with the table's current
// contents in one transaction.
func (s *Store) SaveBindings(b *bind.Bindings) error {
	tx, err := s.db.Begin()
	if nil != err {
		return err
	}
	if _, err := tx.Exec("delete from bindings"); nil != err {
		tx.Rollback()
		return err
	}
	insertErr := error(nil)
	b.Each(func(id string, lane int) {
		if nil != insertErr {
			return
		}
		_, insertErr = tx.Exec("insert into bindings(button_id, lane) values(?, ?)", id, lane)
	})
	if nil != insertErr {
		tx.Rollback()
		return insertErr
	}
	return tx.Commit()
}

// LoadBindings applies the stored layout on top of b. Rows pointing at
// lanes outside b's range are skipped with a log line; an empty table
// leaves the defaults alone.
func (s *Store) LoadBindings(b *bind.Bindings) error {
	rows, err := s.db.Query("select button_id, lane from bindings")
	if nil != err {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var lane int
		if err := rows.Scan(&id, &lane); nil != err {
			return err
		}
		if err := b.Bind(id, lane); nil != err {
			log.Println("skipping stored binding", id, "->", lane, err)
		}
	}
	return rows.Err()
}

type Result struct {
	Rate     float64
	Score    int
	Percent  float64
	MaxCombo int
	Counts   [5]int
	Failed   bool
}

func (s *Store) SaveResult(c *game.Chart, r Result) error {
	counts, err := json.Marshal(r.Counts)
	if nil != err {
		return err
	}
	_, err = s.db.Exec(
		"insert into results(sum, rate, score, percent, max_combo, counts, failed) values(?, ?, ?, ?, ?, ?, ?)",
		HashChart(c), r.Rate, r.Score, r.Percent, r.MaxCombo, counts, r.Failed)
	return err
}

func (s *Store) LoadResults(c *game.Chart) ([]Result, error) {
	results := []Result{}
	rows, err := s.db.Query(
		"select rate, score, percent, max_combo, counts, failed from results where sum = ? order by score desc",
		HashChart(c))
	if nil != err {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r Result
		var counts []byte
		if err := rows.Scan(&r.Rate, &r.Score, &r.Percent, &r.MaxCombo, &counts, &r.Failed); nil != err {
			return nil, err
		}
		if err := json.Unmarshal(counts, &r.Counts); nil != err {
			log.Println("unable to unmarshal result counts:", err)
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
