package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

const destinationColumns = `id, name, slug, location, description1, description2, price, rating,
	categories, image_url, image_public_id, best_time, expectations, views, created_at, updated_at`

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func scanDestination(row pgx.Row) (model.Destination, error) {
	var d model.Destination
	err := row.Scan(&d.ID, &d.Name, &d.Slug, &d.Location, &d.Description1, &d.Description2,
		&d.Price, &d.Rating, &d.Categories, &d.ImageURL, &d.ImagePublicID, &d.BestTime,
		&d.Expectations, &d.Views, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

var destinationOrderings = map[string]string{
	"":           "created_at DESC",
	"newest":     "created_at DESC",
	"views":      "views DESC",
	"rating":     "rating DESC",
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
}

func (api *API) ListDestinationsRepo(ctx context.Context, params model.ListDestinationsParams) ([]model.Destination, error) {
	ordering, ok := destinationOrderings[params.Order]
	if !ok {
		ordering = destinationOrderings[""]
	}

	stmt := `SELECT ` + destinationColumns + ` FROM destinations
		WHERE (cardinality($1::text[]) = 0 OR categories && $1::text[])
		ORDER BY ` + ordering

	categories := params.Categories
	if categories == nil {
		categories = []string{}
	}

	rows, err := api.DB.Query(ctx, stmt, categories)
	if err != nil {
		log.Println("unable to list destinations", err)
		return nil, err
	}
	defer rows.Close()

	var destinations []model.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

// GetDestinationBySlugRepo bumps the view counter as part of the fetch.
func (api *API) GetDestinationBySlugRepo(ctx context.Context, slug string) (model.Destination, error) {
	stmt := `UPDATE destinations SET views = views + 1 WHERE slug = $1
		RETURNING ` + destinationColumns

	d, err := scanDestination(api.DB.QueryRow(ctx, stmt, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Destination{}, model.ErrNotFound
		}
		log.Println("unable to get destination by slug", err)
		return model.Destination{}, err
	}
	return d, nil
}

func (api *API) GetDestinationByIDRepo(ctx context.Context, id uuid.UUID) (model.Destination, error) {
	stmt := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	d, err := scanDestination(api.DB.QueryRow(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Destination{}, model.ErrNotFound
		}
		log.Println("unable to get destination by id", err)
		return model.Destination{}, err
	}
	return d, nil
}

func (api *API) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := api.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM destinations WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		log.Println("unable to check destination slug", err)
		return false, err
	}
	return exists, nil
}

func (api *API) CreateDestinationRepo(ctx context.Context, req model.CreateDestinationRequest, slug, imageURL, imagePublicID string) (model.Destination, error) {
	stmt := `INSERT INTO destinations
		(name, slug, location, description1, description2, price, rating, categories,
		 image_url, image_public_id, best_time, expectations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + destinationColumns

	expectations := req.Expectations
	if expectations == nil {
		expectations = []string{}
	}

	d, err := scanDestination(api.DB.QueryRow(ctx, stmt,
		req.Name, slug, req.Location, req.Description1, req.Description2,
		req.Price, req.Rating, req.Categories, imageURL, imagePublicID,
		req.BestTime, expectations))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Destination{}, model.ErrConflict
		}
		log.Println("unable to create destination", err)
		return model.Destination{}, err
	}
	return d, nil
}

func (api *API) UpdateDestinationRepo(ctx context.Context, id uuid.UUID, req model.UpdateDestinationRequest, slug, imageURL string, imagePublicID *string) (model.Destination, error) {
	stmt := `UPDATE destinations SET
		name = $2, slug = $3, location = $4, description1 = $5, description2 = $6,
		price = $7, rating = $8, categories = $9, image_url = $10, image_public_id = $11,
		best_time = $12, expectations = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + destinationColumns

	expectations := req.Expectations
	if expectations == nil {
		expectations = []string{}
	}

	d, err := scanDestination(api.DB.QueryRow(ctx, stmt, id,
		req.Name, slug, req.Location, req.Description1, req.Description2,
		req.Price, req.Rating, req.Categories, imageURL, imagePublicID,
		req.BestTime, expectations))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Destination{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Destination{}, model.ErrConflict
		}
		log.Println("unable to update destination", err)
		return model.Destination{}, err
	}
	return d, nil
}

// DeleteDestinationRepo removes the row and its dependents in one transaction
// and reports the Cloudinary public ID so the caller can drop the image.
func (api *API) DeleteDestinationRepo(ctx context.Context, id uuid.UUID) (*string, error) {
	var publicID *string
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM saved_destinations WHERE destination_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM group_members WHERE group_id IN (SELECT id FROM groups WHERE destination_id = $1)`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM groups WHERE destination_id = $1`, id); err != nil {
			return err
		}
		err := tx.QueryRow(ctx, `DELETE FROM destinations WHERE id = $1 RETURNING image_public_id`, id).Scan(&publicID)
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrNotFound
		}
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			log.Println("unable to delete destination", err)
		}
		return nil, err
	}
	return publicID, nil
}
