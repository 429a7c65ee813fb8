package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
)

const groupColumns = `g.id, g.name, g.destination_id, d.name, g.creator_id, g.start_date, g.end_date,
	g.budget, g.max_members,
	(SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.id) AS member_count,
	g.description, g.created_at, g.updated_at`

func scanGroup(row pgx.Row) (model.Group, error) {
	var g model.Group
	err := row.Scan(&g.ID, &g.Name, &g.DestinationID, &g.DestinationName, &g.CreatorID,
		&g.StartDate, &g.EndDate, &g.Budget, &g.MaxMembers, &g.MemberCount,
		&g.Description, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (api *API) queryGroups(ctx context.Context, stmt string, args ...interface{}) ([]model.Group, error) {
	rows, err := api.DB.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (api *API) ListGroupsRepo(ctx context.Context, search string) ([]model.Group, error) {
	stmt := `SELECT ` + groupColumns + `
		FROM groups g
		JOIN destinations d ON d.id = g.destination_id
		WHERE ($1 = '' OR d.name ILIKE '%' || $1 || '%' OR g.name ILIKE '%' || $1 || '%')
		ORDER BY g.start_date`

	groups, err := api.queryGroups(ctx, stmt, search)
	if err != nil {
		log.Println("unable to list travel groups", err)
		return nil, err
	}
	return groups, nil
}

func (api *API) ListGroupsByMemberRepo(ctx context.Context, userID uuid.UUID) ([]model.Group, error) {
	stmt := `SELECT ` + groupColumns + `
		FROM groups g
		JOIN destinations d ON d.id = g.destination_id
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.start_date`

	groups, err := api.queryGroups(ctx, stmt, userID)
	if err != nil {
		log.Println("unable to list member travel groups", err)
		return nil, err
	}
	return groups, nil
}

func (api *API) GetGroupByIDRepo(ctx context.Context, id uuid.UUID) (model.Group, []model.GroupMember, error) {
	stmt := `SELECT ` + groupColumns + `
		FROM groups g
		JOIN destinations d ON d.id = g.destination_id
		WHERE g.id = $1`

	group, err := scanGroup(api.DB.QueryRow(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Group{}, nil, model.ErrNotFound
		}
		log.Println("unable to get travel group", err)
		return model.Group{}, nil, err
	}

	rows, err := api.DB.Query(ctx,
		`SELECT group_id, user_id, joined_at FROM group_members WHERE group_id = $1 ORDER BY joined_at`, id)
	if err != nil {
		log.Println("unable to get travel group members", err)
		return model.Group{}, nil, err
	}
	defer rows.Close()

	members := []model.GroupMember{}
	for rows.Next() {
		var m model.GroupMember
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.JoinedAt); err != nil {
			return model.Group{}, nil, err
		}
		members = append(members, m)
	}
	return group, members, rows.Err()
}

// CreateGroupRepo inserts the group and the creator's membership in one
// transaction, so a group can never exist without its first member.
func (api *API) CreateGroupRepo(ctx context.Context, creatorID uuid.UUID, req model.CreateGroupRequest) (model.Group, error) {
	var groupID uuid.UUID
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO groups (name, destination_id, creator_id, start_date, end_date, budget, max_members, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			req.Name, req.DestinationID, creatorID, req.StartDate, req.EndDate,
			req.Budget, req.MaxMembers, req.Description).Scan(&groupID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`, groupID, creatorID)
		return err
	})
	if err != nil {
		log.Println("unable to create travel group", err)
		return model.Group{}, err
	}

	group, _, err := api.GetGroupByIDRepo(ctx, groupID)
	return group, err
}

// JoinGroupRepo locks the group row before counting members, so two racing
// joins on the last slot cannot both succeed.
func (api *API) JoinGroupRepo(ctx context.Context, groupID, userID uuid.UUID) error {
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var maxMembers int
		err := tx.QueryRow(ctx, `SELECT max_members FROM groups WHERE id = $1 FOR UPDATE`, groupID).Scan(&maxMembers)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrNotFound
			}
			return err
		}

		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM group_members WHERE group_id = $1`, groupID).Scan(&count); err != nil {
			return err
		}
		if count >= maxMembers {
			return model.ErrGroupFull
		}

		tag, err := tx.Exec(ctx,
			`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)
			 ON CONFLICT (group_id, user_id) DO NOTHING`, groupID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrAlreadyMember
		}
		return nil
	})
	if err != nil && !errors.Is(err, model.ErrNotFound) &&
		!errors.Is(err, model.ErrGroupFull) && !errors.Is(err, model.ErrAlreadyMember) {
		log.Println("unable to join travel group", err)
	}
	return err
}

func (api *API) LeaveGroupRepo(ctx context.Context, groupID, userID uuid.UUID) error {
	tag, err := api.DB.Exec(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		log.Println("unable to leave travel group", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
