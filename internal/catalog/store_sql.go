package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

var ErrNotSeeded = errors.New("catalog not seeded")

// Document sections stored as JSON in catalog_documents.
const (
	docMeta           = "meta"
	docAccess         = "access"
	docInfrastructure = "infrastructure"
	docOperations     = "operations"
)

type meta struct {
	Title       string `json:"title"`
	Stakeholder string `json:"stakeholder"`
}

// SQLStore keeps a catalog in sqlite or Postgres. Survey responses are
// normalised rows; the descriptive sections are JSON documents.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Seed replaces whatever is stored with c in a single transaction.
func (s *SQLStore) Seed(ctx context.Context, c *Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM survey_groups`,
		`DELETE FROM survey_datasets`,
		`DELETE FROM catalog_documents`,
	} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	now := time.Now().Unix()
	docs := []struct {
		section string
		body    any
	}{
		{docMeta, meta{Title: c.Title, Stakeholder: c.Stakeholder}},
		{docAccess, c.Access},
		{docInfrastructure, c.Infrastructure},
		{docOperations, c.Operations},
	}
	for _, d := range docs {
		buf, err := json.Marshal(d.body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", d.section, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_documents (section,body_json,updated_at) VALUES ($1,$2,$3)`,
			d.section, string(buf), now); err != nil {
			return fmt.Errorf("insert %s: %w", d.section, err)
		}
	}

	for i, ds := range c.Psychosocial {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO survey_datasets (seq,indicator,perspective) VALUES ($1,$2,$3)`,
			i, ds.Indicator, ds.Perspective.String()); err != nil {
			return fmt.Errorf("insert dataset %d: %w", i, err)
		}
		for j, g := range ds.Groups {
			r := g.Responses
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO survey_groups
				(dataset_seq,seq,group_name,strongly_disagree,disagree,neutral,agree,strongly_agree)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				i, j, g.Name, r.StronglyDisagree, r.Disagree, r.Neutral, r.Agree, r.StronglyAgree); err != nil {
				return fmt.Errorf("insert group %d/%d: %w", i, j, err)
			}
		}
	}
	return tx.Commit()
}

// Load rebuilds the catalog in the order it was seeded.
func (s *SQLStore) Load(ctx context.Context) (*Catalog, error) {
	docs, err := s.documents(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotSeeded
	}

	var c Catalog
	var m meta
	targets := map[string]any{
		docMeta:           &m,
		docAccess:         &c.Access,
		docInfrastructure: &c.Infrastructure,
		docOperations:     &c.Operations,
	}
	for section, dst := range targets {
		body, ok := docs[section]
		if !ok {
			return nil, fmt.Errorf("%w: missing section %s", ErrNotSeeded, section)
		}
		if err := json.Unmarshal([]byte(body), dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", section, err)
		}
	}
	c.Title, c.Stakeholder = m.Title, m.Stakeholder

	if c.Psychosocial, err = s.datasets(ctx); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) documents(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT section,body_json FROM catalog_documents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var section, body string
		if err := rows.Scan(&section, &body); err != nil {
			return nil, err
		}
		out[section] = body
	}
	return out, rows.Err()
}

func (s *SQLStore) datasets(ctx context.Context) ([]survey.Dataset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq,indicator,perspective FROM survey_datasets ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	var out []survey.Dataset
	index := map[int]int{}
	for rows.Next() {
		var seq int
		var indicator, perspective string
		if err := rows.Scan(&seq, &indicator, &perspective); err != nil {
			rows.Close()
			return nil, err
		}
		index[seq] = len(out)
		out = append(out, survey.Dataset{
			Indicator:   indicator,
			Perspective: survey.ParsePerspective(perspective),
			Groups:      []survey.Group{},
		})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	grows, err := s.db.QueryContext(ctx,
		`SELECT dataset_seq,group_name,strongly_disagree,disagree,neutral,agree,strongly_agree
		FROM survey_groups ORDER BY dataset_seq,seq`)
	if err != nil {
		return nil, err
	}
	defer grows.Close()
	for grows.Next() {
		var ds int
		var g survey.Group
		r := &g.Responses
		if err := grows.Scan(&ds, &g.Name, &r.StronglyDisagree, &r.Disagree, &r.Neutral, &r.Agree, &r.StronglyAgree); err != nil {
			return nil, err
		}
		i, ok := index[ds]
		if !ok {
			return nil, fmt.Errorf("group references unknown dataset %d", ds)
		}
		out[i].Groups = append(out[i].Groups, g)
	}
	return out, grows.Err()
}
