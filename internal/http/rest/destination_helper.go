package rest

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/changefeed"
	"github.com/yatrasetgo/packyourbags/util/values"
)

const destinationImageFolder = "packyourbags/destinations"

func (api *API) CreateDestinationHelper(ctx context.Context, req model.CreateDestinationRequest, image io.Reader) (model.Destination, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Destination{}, values.BadRequestBody, "invalid destination details", err
	}

	slug := util.Slugify(req.Name)
	if slug == "" {
		return model.Destination{}, values.BadRequestBody, "destination name must contain letters or numbers", errors.New("name yields an empty slug")
	}

	exists, err := api.SlugExists(ctx, slug)
	if err != nil {
		return model.Destination{}, values.Error, "failed to create destination", err
	}
	if exists {
		return model.Destination{}, values.Conflict, "a destination with this name already exists", model.ErrConflict
	}

	imageURL, publicID, err := api.Deps.Cloudinary.UploadImage(ctx, image, destinationImageFolder)
	if err != nil {
		return model.Destination{}, values.Error, "failed to upload destination image", errors.Wrap(model.ErrUpload, err.Error())
	}

	destination, err := api.CreateDestinationRepo(ctx, req, slug, imageURL, publicID)
	if err != nil {
		// insert failed after the upload succeeded, drop the orphan
		if delErr := api.Deps.Cloudinary.DeleteImage(ctx, publicID); delErr != nil {
			log.Println("failed to clean up destination image", publicID, delErr)
		}
		if errors.Is(err, model.ErrConflict) {
			return model.Destination{}, values.Conflict, "a destination with this name already exists", err
		}
		return model.Destination{}, values.Error, "failed to create destination", err
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableDestinations,
		Action: changefeed.ActionInsert,
		ID:     destination.ID.String(),
	})

	return destination, values.Created, "Destination created successfully", nil
}

func (api *API) UpdateDestinationHelper(ctx context.Context, id uuid.UUID, req model.UpdateDestinationRequest, image io.Reader) (model.Destination, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Destination{}, values.BadRequestBody, "invalid destination details", err
	}

	slug := util.Slugify(req.Name)
	if slug == "" {
		return model.Destination{}, values.BadRequestBody, "destination name must contain letters or numbers", errors.New("name yields an empty slug")
	}

	existing, err := api.GetDestinationByIDRepo(ctx, id)
	if err != nil {
		return model.Destination{}, errorStatus(err), "destination not found", err
	}

	if slug != existing.Slug {
		exists, err := api.SlugExists(ctx, slug)
		if err != nil {
			return model.Destination{}, values.Error, "failed to update destination", err
		}
		if exists {
			return model.Destination{}, values.Conflict, "a destination with this name already exists", model.ErrConflict
		}
	}

	imageURL := existing.ImageURL
	imagePublicID := existing.ImagePublicID
	if image != nil {
		url, publicID, err := api.Deps.Cloudinary.UploadImage(ctx, image, destinationImageFolder)
		if err != nil {
			return model.Destination{}, values.Error, "failed to upload destination image", errors.Wrap(model.ErrUpload, err.Error())
		}
		imageURL = url
		imagePublicID = util.StrPtr(publicID)
	}

	destination, err := api.UpdateDestinationRepo(ctx, id, req, slug, imageURL, imagePublicID)
	if err != nil {
		return model.Destination{}, errorStatus(err), "failed to update destination", err
	}

	// the old image is unreferenced once the row points at the new one
	if image != nil && existing.ImagePublicID != nil {
		if err := api.Deps.Cloudinary.DeleteImage(ctx, *existing.ImagePublicID); err != nil {
			log.Println("failed to delete replaced destination image", *existing.ImagePublicID, err)
		}
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableDestinations,
		Action: changefeed.ActionUpdate,
		ID:     destination.ID.String(),
	})

	return destination, values.Success, "Destination updated successfully", nil
}

func (api *API) DeleteDestinationHelper(ctx context.Context, id uuid.UUID) (string, string, error) {
	publicID, err := api.DeleteDestinationRepo(ctx, id)
	if err != nil {
		return errorStatus(err), "failed to delete destination", err
	}

	if publicID != nil {
		if err := api.Deps.Cloudinary.DeleteImage(ctx, *publicID); err != nil {
			log.Println("failed to delete destination image", *publicID, err)
		}
	}

	api.Deps.ChangeFeed.Publish(changefeed.Event{
		Table:  changefeed.TableDestinations,
		Action: changefeed.ActionDelete,
		ID:     id.String(),
	})

	return values.Success, "Destination deleted successfully", nil
}
