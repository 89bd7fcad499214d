// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/parade-jury/models"
)

// SQLStore persists votes and juries in SQLite or PostgreSQL.
// The schema comes from db.CreateSchema.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// Save upserts the vote keyed by participant. first_saved_ns is only
// written on insert so overwrites keep their export position.
func (s *SQLStore) Save(ctx context.Context, vote models.Vote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (participant_id, jury_code, originality, interaction, total, submitted_at, first_saved_ns)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (participant_id) DO UPDATE SET
			jury_code = excluded.jury_code,
			originality = excluded.originality,
			interaction = excluded.interaction,
			total = excluded.total,
			submitted_at = excluded.submitted_at
	`, vote.ParticipantID, vote.JuryCode, vote.Originality, vote.Interaction, vote.Total,
		formatTime(vote.Timestamp), s.now().UnixNano())
	if err != nil {
		return storageErr("save vote", err)
	}
	return nil
}

func (s *SQLStore) GetAll(ctx context.Context) ([]models.Vote, error) {
	return s.queryVotes(ctx, `
		SELECT participant_id, jury_code, originality, interaction, total, submitted_at
		FROM vote
		ORDER BY first_saved_ns, participant_id
	`)
}

func (s *SQLStore) GetByJuryCode(ctx context.Context, juryCode string) ([]models.Vote, error) {
	return s.queryVotes(ctx, `
		SELECT participant_id, jury_code, originality, interaction, total, submitted_at
		FROM vote
		WHERE jury_code = $1
		ORDER BY first_saved_ns, participant_id
	`, juryCode)
}

func (s *SQLStore) GetVote(ctx context.Context, participantID, juryCode string) (models.Vote, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT participant_id, jury_code, originality, interaction, total, submitted_at
		FROM vote
		WHERE participant_id = $1
	`, participantID)

	vote, err := scanVote(row)
	if err == sql.ErrNoRows {
		return models.Vote{}, false, nil
	}
	if err != nil {
		return models.Vote{}, false, storageErr("get vote", err)
	}

	// The slot belongs to whichever jury wrote it last
	if vote.JuryCode != juryCode {
		return models.Vote{}, false, nil
	}
	return vote, true, nil
}

func (s *SQLStore) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM vote`); err != nil {
		return storageErr("clear votes", err)
	}
	return nil
}

func (s *SQLStore) queryVotes(ctx context.Context, query string, args ...any) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("query votes", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, storageErr("scan vote", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate votes", err)
	}
	return votes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVote(row scanner) (models.Vote, error) {
	var v models.Vote
	var submittedAt string
	err := row.Scan(&v.ParticipantID, &v.JuryCode, &v.Originality, &v.Interaction, &v.Total, &submittedAt)
	if err != nil {
		return models.Vote{}, err
	}
	if v.Timestamp, err = parseTime(submittedAt); err != nil {
		return models.Vote{}, err
	}
	return v, nil
}

func (s *SQLStore) SaveJury(ctx context.Context, jury models.Jury) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jury (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category
	`, jury.ID, jury.Name, jury.Category, formatTime(jury.CreatedAt))
	if err != nil {
		return storageErr("save jury", err)
	}
	return nil
}

func (s *SQLStore) GetAllJuries(ctx context.Context) ([]models.Jury, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, created_at
		FROM jury
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, storageErr("query juries", err)
	}
	defer rows.Close()

	juries := []models.Jury{}
	for rows.Next() {
		jury, err := scanJury(rows)
		if err != nil {
			return nil, storageErr("scan jury", err)
		}
		juries = append(juries, jury)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate juries", err)
	}
	return juries, nil
}

func (s *SQLStore) GetJury(ctx context.Context, id string) (models.Jury, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, created_at
		FROM jury
		WHERE id = $1
	`, id)

	jury, err := scanJury(row)
	if err == sql.ErrNoRows {
		return models.Jury{}, ErrNotFound
	}
	if err != nil {
		return models.Jury{}, storageErr("get jury", err)
	}
	return jury, nil
}

func (s *SQLStore) DeleteJury(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM jury WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete jury", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete jury", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJury(row scanner) (models.Jury, error) {
	var j models.Jury
	var createdAt string
	if err := row.Scan(&j.ID, &j.Name, &j.Category, &createdAt); err != nil {
		return models.Jury{}, err
	}
	var err error
	if j.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Jury{}, err
	}
	return j, nil
}

// Fixed-width so text ordering matches time ordering
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
