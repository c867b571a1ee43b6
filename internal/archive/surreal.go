package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/studiosite/internal/config"
	"github.com/nfrund/studiosite/internal/database"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

const surrealTable = "contact_submission"

// Surreal stores submissions in a SurrealDB table.
type Surreal struct {
	db *surrealdb.DB
}

var _ domain.SubmissionArchive = (*Surreal)(nil)

// surrealRow is the stored shape. The record id is left to SurrealDB so the
// submission id lives in its own field.
type surrealRow struct {
	SubmissionID string `json:"submission_id"`
	ClientID     string `json:"client_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Content      string `json:"content"`
	SubmittedAt  int64  `json:"submitted_at"`
}

// OpenSurreal connects using the SURREAL_* settings.
func OpenSurreal(ctx context.Context, cfg config.Provider) (*Surreal, error) {
	db, err := database.NewDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Surreal{db: db}, nil
}

// Save stores sub. Saving the same submission twice keeps the first copy.
func (s *Surreal) Save(ctx context.Context, sub domain.Submission) error {
	exists, err := database.Exists(ctx, s.db, surrealTable, "submission_id", sub.ID)
	if err != nil {
		return fmt.Errorf("look up submission: %w", err)
	}
	if exists {
		return nil
	}

	row := surrealRow{
		SubmissionID: sub.ID,
		ClientID:     sub.ClientID,
		FullName:     sub.Fields.FullName,
		Email:        sub.Fields.Email,
		Subject:      sub.Fields.Subject,
		Content:      sub.Fields.Content,
		SubmittedAt:  sub.SubmittedAt.UTC().UnixMilli(),
	}
	err = database.Execute(ctx, s.db, "CREATE type::thing($tb, $id) CONTENT $row", map[string]any{
		"tb":  surrealTable,
		"id":  sub.ID,
		"row": row,
	})
	if err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

func (s *Surreal) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	query := "SELECT submission_id, client_id, full_name, email, subject, content, submitted_at FROM type::table($tb) ORDER BY submitted_at DESC"
	params := map[string]any{"tb": surrealTable}
	if limit > 0 {
		query += " LIMIT $limit"
		params["limit"] = limit
	}

	rows, err := database.Query[surrealRow](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	out := make([]domain.Submission, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Submission{
			ID:       r.SubmissionID,
			ClientID: r.ClientID,
			Fields: domain.MessageFields{
				FullName: r.FullName,
				Email:    r.Email,
				Subject:  r.Subject,
				Content:  r.Content,
			},
			SubmittedAt: time.UnixMilli(r.SubmittedAt).UTC(),
		})
	}
	return out, nil
}

func (s *Surreal) Close() error {
	s.db.Close(context.Background())
	return nil
}
