package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository"
)

const eventColumns = `id, title, month, day, location, time, description, registration`

// CreateEvent assigns id = max(existing)+1 and inserts. The id is computed
// inside the INSERT statement itself, so there is no window between
// reading the max and writing the row; the UNIQUE constraint backstops
// anything the write lock lets through. Any id already set on e is
// overwritten with the assigned one.
func (r *SQLiteRepo) CreateEvent(ctx context.Context, e *models.Event) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("event is nil")
	}

	err := r.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO events (`+eventColumns+`) VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM events), ?, ?, ?, ?, ?, ?, ?)`,
			e.Title, e.Month, e.Day,
			nullable(e.Location), nullable(e.Time), nullable(e.Description), nullable(e.Registration))
		if err != nil {
			return err
		}

		rowID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `SELECT id FROM events WHERE rowid_pk = ?`, rowID).Scan(&e.ID)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
		}
		return 0, err
	}

	return e.ID, nil
}

func (r *SQLiteRepo) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return e, nil
}

func (r *SQLiteRepo) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+eventColumns+` FROM events ORDER BY rowid_pk`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *e)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateEvent(ctx context.Context, e *models.Event) error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE events SET title = ?, month = ?, day = ?, location = ?, time = ?, description = ?, registration = ? WHERE id = ?`,
		e.Title, e.Month, e.Day,
		nullable(e.Location), nullable(e.Time), nullable(e.Description), nullable(e.Registration), e.ID)
	return err
}

func (r *SQLiteRepo) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanEvent(scan func(dest ...any) error) (*models.Event, error) {
	var e models.Event
	var location, timeStr, description, registration sql.NullString

	if err := scan(&e.ID, &e.Title, &e.Month, &e.Day, &location, &timeStr, &description, &registration); err != nil {
		return nil, err
	}

	e.Location = location.String
	e.Time = timeStr.String
	e.Description = description.String
	e.Registration = registration.String

	return &e, nil
}
