package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
)

// ItemRepository issues the item statements against the shared pool.
//
// Every method is exactly one parameterized statement. Each statement
// is independently atomic at the driver level; there are no
// transactions spanning operations and no retries. Driver errors are
// returned verbatim for the upper layers to interpret.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository constructs an ItemRepository over the app's pool.
func NewItemRepository(s *server.Server) *ItemRepository {
	return &ItemRepository{
		pool: s.DB.Pool,
	}
}

// Insert persists a new item row.
func (r *ItemRepository) Insert(ctx context.Context, item model.Item) error {
	zerolog.Ctx(ctx).Debug().Str("item_id", item.ID).Msg("inserting item")

	_, err := r.pool.Exec(ctx,
		`INSERT INTO items (id, name, description) VALUES ($1, $2, $3)`,
		item.ID, item.Name, item.Description,
	)
	return err
}

// SelectAll returns every item row in table scan order.
//
// The result is never nil, so an empty table serializes as a JSON
// array rather than null.
func (r *ItemRepository) SelectAll(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description FROM items`,
	)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// SelectByID returns the item with the given id, or pgx.ErrNoRows when
// no row matches.
func (r *ItemRepository) SelectByID(ctx context.Context, id string) (model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description FROM items WHERE id = $1`,
		id,
	)
	if err != nil {
		return model.Item{}, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Item])
}

// Update overwrites name and description for the given id. The
// affected-row count is deliberately ignored: an id that matches no
// row is a successful no-op.
func (r *ItemRepository) Update(ctx context.Context, id, name, description string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE items SET name = $1, description = $2 WHERE id = $3`,
		name, description, id,
	)
	return err
}

// Delete removes the row with the given id, ignoring the affected-row
// count like Update.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	zerolog.Ctx(ctx).Debug().Str("item_id", id).Msg("deleting item")

	_, err := r.pool.Exec(ctx,
		`DELETE FROM items WHERE id = $1`,
		id,
	)
	return err
}
