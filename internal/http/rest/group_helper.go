package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/changefeed"
	"github.com/yatrasetgo/packyourbags/util/values"
)

func (api *API) CreateGroupHelper(ctx context.Context, creatorID uuid.UUID, req model.CreateGroupRequest) (model.Group, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Group{}, values.BadRequestBody, "invalid group details", err
	}
	if req.EndDate.Before(req.StartDate) {
		return model.Group{}, values.BadRequestBody, "end date cannot be before start date", errors.New("end date before start date")
	}

	if _, err := api.GetDestinationByIDRepo(ctx, req.DestinationID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Group{}, values.NotFound, "destination not found", err
		}
		return model.Group{}, values.Error, "failed to create travel group", err
	}

	group, err := api.CreateGroupRepo(ctx, creatorID, req)
	if err != nil {
		return model.Group{}, values.Error, "failed to create travel group", err
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableGroups,
		Action: changefeed.ActionInsert,
		ID:     group.ID.String(),
	})

	return group, values.Created, "Travel group created successfully", nil
}

func (api *API) JoinGroupHelper(ctx context.Context, groupID, userID uuid.UUID) (string, string, error) {
	if err := api.JoinGroupRepo(ctx, groupID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return values.NotFound, "travel group not found", err
		case errors.Is(err, model.ErrGroupFull):
			return values.Conflict, "travel group is already full", err
		case errors.Is(err, model.ErrAlreadyMember):
			return values.Conflict, "you are already a member of this group", err
		default:
			return values.Error, "failed to join travel group", err
		}
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableGroupMembers,
		Action: changefeed.ActionInsert,
		ID:     groupID.String(),
	})

	return values.Success, "Joined travel group successfully", nil
}

func (api *API) LeaveGroupHelper(ctx context.Context, groupID, userID uuid.UUID) (string, string, error) {
	if err := api.LeaveGroupRepo(ctx, groupID, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return values.NotFound, "you are not a member of this group", err
		}
		return values.Error, "failed to leave travel group", err
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableGroupMembers,
		Action: changefeed.ActionDelete,
		ID:     groupID.String(),
	})

	return values.Success, "Left travel group successfully", nil
}
