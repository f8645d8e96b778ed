package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"cnres-bot/internal/database"
)

// PostgresSource resolves dishes from the menu_items table. Rows are
// keyed by normalized sample name, so lookups are exact matches against
// what the loader seeded.
type PostgresSource struct {
	db *database.DB
}

func NewPostgresSource(db *database.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Resolve(ctx context.Context, name string) (Entry, bool, error) {
	row := s.db.QueryRow(ctx,
		`SELECT canonical_name, price, category, display_price
		 FROM menu_items WHERE sample_name = $1`,
		Normalize(name))

	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to query menu item: %w", err)
	}
	return e, true, nil
}

func (s *PostgresSource) ResolveMany(ctx context.Context, names []string) (map[string]Entry, error) {
	keys := make([]string, len(names))
	byKey := make(map[string][]string, len(names))
	for i, name := range names {
		k := Normalize(name)
		keys[i] = k
		byKey[k] = append(byKey[k], name)
	}

	rows, err := s.db.Query(ctx,
		`SELECT sample_name, canonical_name, price, category, display_price
		 FROM menu_items WHERE sample_name = ANY($1)`,
		keys)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Entry, len(names))
	for rows.Next() {
		var sampleName, price string
		var e Entry
		if err := rows.Scan(&sampleName, &e.CanonicalName, &price, &e.Category, &e.DisplayPrice); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		e.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for %s: %w", e.CanonicalName, err)
		}
		for _, name := range byKey[sampleName] {
			out[name] = e
		}
	}
	return out, rows.Err()
}

// Put upserts one lookup row. Used by the menu loader.
func (s *PostgresSource) Put(ctx context.Context, sampleName string, e Entry) error {
	err := s.db.Exec(ctx,
		`INSERT INTO menu_items (sample_name, canonical_name, price, category, display_price)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (sample_name) DO UPDATE SET
		     canonical_name = EXCLUDED.canonical_name,
		     price = EXCLUDED.price,
		     category = EXCLUDED.category,
		     display_price = EXCLUDED.display_price`,
		sampleName, e.CanonicalName, e.Price.StringFixed(2), e.Category, e.DisplayPrice)
	if err != nil {
		return fmt.Errorf("failed to upsert menu item %s: %w", sampleName, err)
	}
	return nil
}

func scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	var price string
	if err := row.Scan(&e.CanonicalName, &price, &e.Category, &e.DisplayPrice); err != nil {
		return Entry{}, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return Entry{}, err
	}
	e.Price = p
	return e, nil
}
