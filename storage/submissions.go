// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is a finalized invoice as recorded at submit time.
// Payload holds the form values as JSON.
type Submission struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Payload     json.RawMessage `json:"payload"`
}

// Submissions appends to and reads from the submitted_invoice table.
type Submissions struct {
	db *sql.DB
}

func NewSubmissions(db *sql.DB) *Submissions {
	return &Submissions{db: db}
}

// Record stores a new submission and returns it with its generated ID.
func (s *Submissions) Record(ctx context.Context, username string, payload json.RawMessage) (Submission, error) {
	sub := Submission{
		ID:          uuid.NewString(),
		Username:    username,
		SubmittedAt: time.Now().UTC(),
		Payload:     payload,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submitted_invoice (id, username, submitted_at, payload)
		VALUES ($1, $2, $3, $4)
	`, sub.ID, sub.Username, sub.SubmittedAt.Format(timeLayout), string(payload))
	if err != nil {
		return Submission{}, fmt.Errorf("failed to record submission: %w", err)
	}

	return sub, nil
}

// List returns all submissions, oldest first.
func (s *Submissions) List(ctx context.Context) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, submitted_at, payload
		FROM submitted_invoice
		ORDER BY submitted_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	subs := []Submission{}
	for rows.Next() {
		var (
			sub         Submission
			submittedAt string
			payload     string
		)
		if err := rows.Scan(&sub.ID, &sub.Username, &submittedAt, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}

		sub.SubmittedAt, err = time.Parse(timeLayout, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("submission %s has bad timestamp: %w", sub.ID, err)
		}
		sub.Payload = json.RawMessage(payload)

		subs = append(subs, sub)
	}

	return subs, rows.Err()
}
