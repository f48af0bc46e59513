package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository"
)

const techColumns = `id, docket, name, description, overview, detailed_description, genre, technical_specifications, innovators, advantages, applications, use_cases, related_links, trl, spotlight`

func (r *SQLiteRepo) CreateTechnology(ctx context.Context, t *models.Technology) error {
	if t == nil {
		return fmt.Errorf("technology is nil")
	}

	innovators, advantages, applications, useCases, links, err := encodeTechLists(t)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, `INSERT INTO technologies (`+techColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Docket, t.Name, t.Description,
		nullable(t.Overview), nullable(t.DetailedDescription), nullable(t.Genre), nullable(t.TechnicalSpecifications),
		innovators, advantages, applications, useCases, links, t.TRL, boolToInt(t.Spotlight))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
		}
		return err
	}

	return nil
}

func (r *SQLiteRepo) GetTechnology(ctx context.Context, id string) (*models.Technology, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+techColumns+` FROM technologies WHERE id = ?`, id)
	t, err := scanTechnology(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return t, nil
}

func (r *SQLiteRepo) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+techColumns+` FROM technologies ORDER BY rowid_pk`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Technology
	for rows.Next() {
		t, err := scanTechnology(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *t)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateTechnology(ctx context.Context, t *models.Technology) error {
	if t == nil {
		return fmt.Errorf("technology is nil")
	}

	innovators, advantages, applications, useCases, links, err := encodeTechLists(t)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, `UPDATE technologies SET docket = ?, name = ?, description = ?, overview = ?, detailed_description = ?, genre = ?, technical_specifications = ?, innovators = ?, advantages = ?, applications = ?, use_cases = ?, related_links = ?, trl = ?, spotlight = ? WHERE id = ?`,
		t.Docket, t.Name, t.Description,
		nullable(t.Overview), nullable(t.DetailedDescription), nullable(t.Genre), nullable(t.TechnicalSpecifications),
		innovators, advantages, applications, useCases, links, t.TRL, boolToInt(t.Spotlight), t.ID)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	}
	return err
}

func (r *SQLiteRepo) DeleteTechnology(ctx context.Context, id string) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM technologies WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func encodeTechLists(t *models.Technology) (innovators, advantages, applications, useCases, links string, err error) {
	if innovators, err = encodeStrings(t.Innovators); err != nil {
		return
	}
	if advantages, err = encodeStrings(t.Advantages); err != nil {
		return
	}
	if applications, err = encodeStrings(t.Applications); err != nil {
		return
	}
	if useCases, err = encodeStrings(t.UseCases); err != nil {
		return
	}
	if t.RelatedLinks == nil {
		t.RelatedLinks = []models.RelatedLink{}
	}
	var b []byte
	b, err = json.Marshal(t.RelatedLinks)
	links = string(b)
	return
}

func encodeStrings(ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	b, err := json.Marshal(ss)
	return string(b), err
}

func scanTechnology(scan func(dest ...any) error) (*models.Technology, error) {
	var t models.Technology
	var overview, detailed, genre, specs sql.NullString
	var innovators, advantages, applications, useCases, links string
	var spotlight int

	if err := scan(&t.ID, &t.Docket, &t.Name, &t.Description, &overview, &detailed, &genre, &specs,
		&innovators, &advantages, &applications, &useCases, &links, &t.TRL, &spotlight); err != nil {
		return nil, err
	}

	t.Overview = overview.String
	t.DetailedDescription = detailed.String
	t.Genre = genre.String
	t.TechnicalSpecifications = specs.String
	t.Spotlight = spotlight != 0

	lists := []struct {
		raw string
		dst *[]string
	}{
		{innovators, &t.Innovators},
		{advantages, &t.Advantages},
		{applications, &t.Applications},
		{useCases, &t.UseCases},
	}
	for _, l := range lists {
		if err := json.Unmarshal([]byte(l.raw), l.dst); err != nil {
			return nil, fmt.Errorf("decode list column: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(links), &t.RelatedLinks); err != nil {
		return nil, fmt.Errorf("decode related_links: %w", err)
	}

	return &t, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
