package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

func (api *API) ListUsersRepo(ctx context.Context) ([]model.User, error) {
	stmt := `SELECT id, email, firstname, lastname, role, auth_provider, is_verified, created_at, updated_at
		FROM users WHERE is_deleted = FALSE ORDER BY created_at DESC`

	rows, err := api.DB.Query(ctx, stmt)
	if err != nil {
		log.Println("unable to list users", err)
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
			&u.AuthProvider, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfileRepo only touches the fields the request carries.
func (api *API) UpdateProfileRepo(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (model.User, error) {
	stmt := `UPDATE users SET
		firstname = COALESCE($2, firstname),
		lastname = COALESCE($3, lastname),
		updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING id, email, firstname, lastname, role, auth_provider, is_verified, created_at, updated_at`

	var u model.User
	err := api.DB.QueryRow(ctx, stmt, userID, req.FirstName, req.LastName).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.AuthProvider, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		log.Println("unable to update profile", err)
		return model.User{}, err
	}
	return u, nil
}

// SoftDeleteUserRepo flips is_deleted and revokes the user's refresh tokens.
func (api *API) SoftDeleteUserRepo(ctx context.Context, userID uuid.UUID) error {
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE users SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE`, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotFound
		}

		_, err = tx.Exec(ctx, `UPDATE auth_tokens SET is_revoked = TRUE WHERE user_id = $1`, userID)
		return err
	})
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		log.Println("unable to delete user", err)
	}
	return err
}
