package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LLMRequestEventData is what the request logger records for every remote
// call: structured solving, illustration or narration.
type LLMRequestEventData struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string // solve, illustrate, narrate
	Kind         string // generate, image, speech
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted request event.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts filters event queries. Zero values mean no filter.
type QueryOpts struct {
	Limit      int
	Purpose    string
	FailedOnly bool
}

// PurposeUsage aggregates calls and tokens for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates calls and tokens for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo persists and queries request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

type sqlEventRepo struct {
	db *sql.DB
}

const eventColumns = `id, timestamp_ms, request_id, provider, model, purpose, kind,
	input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body`

func (r *sqlEventRepo) AppendLLMRequest(ctx context.Context, d LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_request_events (
			timestamp_ms, request_id, provider, model, purpose, kind,
			input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().UnixMilli(), d.RequestID, d.Provider, d.Model, d.Purpose, d.Kind,
		d.InputTokens, d.OutputTokens, d.LatencyMs, d.Success, d.ErrorMessage, d.RequestBody, d.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm request event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns events newest first.
func (r *sqlEventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM llm_request_events`
	var (
		where []string
		args  []any
	)
	if opts.Purpose != "" {
		where = append(where, `purpose = ?`)
		args = append(args, opts.Purpose)
	}
	if opts.FailedOnly {
		where = append(where, `success = 0`)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY id DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// GetLLMEvent returns (nil, nil) when no event has the given id.
func (r *sqlEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM llm_request_events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *sqlEventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens), AVG(latency_ms)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *sqlEventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_request_events
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*LLMRequestEvent, error) {
	var e LLMRequestEvent
	var ts int64
	err := s.Scan(&e.ID, &ts, &e.RequestID, &e.Provider, &e.Model, &e.Purpose, &e.Kind,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage,
		&e.RequestBody, &e.ResponseBody)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	e.Timestamp = time.UnixMilli(ts).UTC()
	return &e, nil
}
