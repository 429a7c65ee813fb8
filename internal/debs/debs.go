package deps

import (
	log "github.com/sirupsen/logrus"

	"github.com/yatrasetgo/packyourbags/config"
	"github.com/yatrasetgo/packyourbags/internal/db"
	"github.com/yatrasetgo/packyourbags/util/changefeed"
	"github.com/yatrasetgo/packyourbags/util/storage"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
	ChangeFeed *changefeed.Hub
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	cloudinary := storage.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	feed := changefeed.NewHub()

	deps := Dependencies{
		DB:         database,
		Cloudinary: cloudinary,
		ChangeFeed: feed,
	}
	return &deps
}

func (d *Dependencies) Pool() db.Pool {
	return d.DB.Pool()
}
