package setup

import (
	"embed"
	"io/fs"
	"net/http"
	"os"

	"github.com/bornholm/academia/internal/config"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed assets/**
var embeddedAssets embed.FS

// NewAssetsHandlerFromConfig serves the embedded assets, shadowed by the
// files of the configured directory if any.
func NewAssetsHandlerFromConfig(conf *config.Config) (http.Handler, error) {
	assets, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if dir := string(conf.Assets.Dir); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, errors.Wrapf(err, "could not access assets directory '%s'", dir)
		}

		assets = mergefs.Merge(os.DirFS(dir), assets)
	}

	return http.StripPrefix("/assets", http.FileServerFS(assets)), nil
}
