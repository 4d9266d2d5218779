package database

import (
	"fmt"
	"time"

	"pinglog/internal/models"
)

// ReplaceDatasets archives the given datasets, replacing any previously
// stored samples under the same keys. The whole import is one
// transaction so a failed run leaves the archive untouched.
func (db *DB) ReplaceDatasets(datasets []models.Dataset) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, ds := range datasets {
		// Cascades are not relied on: clear children explicitly so the
		// archive stays consistent even without the foreign_keys pragma.
		if _, err := tx.Exec(`DELETE FROM samples WHERE dataset_id IN (SELECT id FROM datasets WHERE key = ?)`, ds.Key); err != nil {
			return fmt.Errorf("clear samples for %s: %w", ds.Key, err)
		}
		if _, err := tx.Exec(`DELETE FROM dataset_ips WHERE dataset_id IN (SELECT id FROM datasets WHERE key = ?)`, ds.Key); err != nil {
			return fmt.Errorf("clear ips for %s: %w", ds.Key, err)
		}
		if _, err := tx.Exec(`DELETE FROM datasets WHERE key = ?`, ds.Key); err != nil {
			return fmt.Errorf("clear dataset %s: %w", ds.Key, err)
		}

		res, err := tx.Exec(`INSERT INTO datasets (key) VALUES (?)`, ds.Key)
		if err != nil {
			return fmt.Errorf("insert dataset %s: %w", ds.Key, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("dataset id for %s: %w", ds.Key, err)
		}

		for _, ip := range ds.IPs {
			if _, err := tx.Exec(`INSERT INTO dataset_ips (dataset_id, ip) VALUES (?, ?)`, id, ip); err != nil {
				return fmt.Errorf("insert ip %s for %s: %w", ip, ds.Key, err)
			}
		}

		stmt, err := tx.Prepare(`INSERT INTO samples (dataset_id, ts_ms, rtt_ms) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare sample insert: %w", err)
		}
		for i := range ds.Times {
			if _, err := stmt.Exec(id, ds.Times[i], ds.RTTs[i]); err != nil {
				stmt.Close()
				return fmt.Errorf("insert sample for %s: %w", ds.Key, err)
			}
		}
		stmt.Close()
	}

	return tx.Commit()
}

// LoadDatasets reads every archived dataset back, samples ordered by
// timestamp and IPs in their stored order.
func (db *DB) LoadDatasets() ([]models.Dataset, error) {
	rows, err := db.Query(`SELECT id, key FROM datasets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	defer rows.Close()

	type entry struct {
		id int64
		ds models.Dataset
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.id, &e.ds.Key); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate datasets: %w", err)
	}

	for i := range entries {
		e := &entries[i]

		ipRows, err := db.Query(`SELECT ip FROM dataset_ips WHERE dataset_id = ? ORDER BY rowid`, e.id)
		if err != nil {
			return nil, fmt.Errorf("query ips for %s: %w", e.ds.Key, err)
		}
		for ipRows.Next() {
			var ip string
			if err := ipRows.Scan(&ip); err != nil {
				ipRows.Close()
				return nil, fmt.Errorf("scan ip for %s: %w", e.ds.Key, err)
			}
			e.ds.IPs = append(e.ds.IPs, ip)
		}
		ipRows.Close()

		sampleRows, err := db.Query(`SELECT ts_ms, rtt_ms FROM samples WHERE dataset_id = ? ORDER BY ts_ms`, e.id)
		if err != nil {
			return nil, fmt.Errorf("query samples for %s: %w", e.ds.Key, err)
		}
		for sampleRows.Next() {
			var ts int64
			var rtt float64
			if err := sampleRows.Scan(&ts, &rtt); err != nil {
				sampleRows.Close()
				return nil, fmt.Errorf("scan sample for %s: %w", e.ds.Key, err)
			}
			e.ds.Times = append(e.ds.Times, ts)
			e.ds.RTTs = append(e.ds.RTTs, rtt)
		}
		sampleRows.Close()
		if err := sampleRows.Err(); err != nil {
			return nil, fmt.Errorf("iterate samples for %s: %w", e.ds.Key, err)
		}
	}

	datasets := make([]models.Dataset, len(entries))
	for i, e := range entries {
		datasets[i] = e.ds
	}
	return datasets, nil
}

// Prune deletes archived samples older than the cutoff and drops
// datasets left with no samples.
func (db *DB) Prune(before time.Time) error {
	if _, err := db.Exec(`DELETE FROM samples WHERE ts_ms < ?`, before.UnixMilli()); err != nil {
		return fmt.Errorf("prune samples: %w", err)
	}
	if _, err := db.Exec(`
        DELETE FROM dataset_ips
        WHERE dataset_id NOT IN (SELECT DISTINCT dataset_id FROM samples)
    `); err != nil {
		return fmt.Errorf("prune orphaned ips: %w", err)
	}
	_, err := db.Exec(`
        DELETE FROM datasets
        WHERE id NOT IN (SELECT DISTINCT dataset_id FROM samples)
    `)
	if err != nil {
		return fmt.Errorf("prune empty datasets: %w", err)
	}
	return nil
}
