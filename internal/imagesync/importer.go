// Package imagesync loads the shared image catalog from an object bucket
// laid out as <prefix>/<product_number>/<file>, with optional <file>.txt
// descriptions next to each image.
package imagesync

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"sort"
	"strings"

	"marketplace/internal/domain"
	applog "marketplace/internal/log"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true,
}

// ObjectStore is the read side of a bucket.
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// ImageWriter inserts an image unless its id is taken.
type ImageWriter interface {
	Create(ctx context.Context, img domain.Image) (bool, error)
}

type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

type Importer struct {
	Objects ObjectStore
	Images  ImageWriter
	Prefix  string
}

func NewImporter(objects ObjectStore, images ImageWriter, prefix string) *Importer {
	return &Importer{Objects: objects, Images: images, Prefix: strings.Trim(prefix, "/")}
}

// Run imports every image object under the prefix. Images already present
// are skipped; a failing object is logged and counted, the rest continue.
func (im *Importer) Run(ctx context.Context) (Result, error) {
	var res Result
	listPrefix := im.Prefix
	if listPrefix != "" {
		listPrefix += "/"
	}
	keys, err := im.Objects.List(ctx, listPrefix)
	if err != nil {
		return res, fmt.Errorf("list %q: %w", listPrefix, err)
	}
	sort.Strings(keys)
	present := make(map[string]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}

	log := applog.Logger().WithField("action", "imagesync")
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if !imageExts[strings.ToLower(path.Ext(key))] {
			continue
		}
		img, err := im.load(ctx, key, present[key+".txt"])
		if err != nil {
			res.Failed++
			log.WithError(err).WithField("key", key).Warn("image import failed")
			continue
		}
		added, err := im.Images.Create(ctx, img)
		if err != nil {
			res.Failed++
			log.WithError(err).WithField("key", key).Warn("image insert failed")
			continue
		}
		if !added {
			res.Skipped++
			continue
		}
		res.Imported++
	}
	log.WithFields(logrus.Fields{
		"imported": res.Imported,
		"skipped":  res.Skipped,
		"failed":   res.Failed,
	}).Info("image catalog synced")
	return res, nil
}

func (im *Importer) load(ctx context.Context, key string, sidecar bool) (domain.Image, error) {
	data, err := im.Objects.Get(ctx, key)
	if err != nil {
		return domain.Image{}, err
	}
	img := domain.Image{
		ID:            ImageID(im.productNumber(key), key),
		Base64:        base64.StdEncoding.EncodeToString(data),
		ProductNumber: im.productNumber(key),
	}
	if sidecar {
		desc, err := im.Objects.Get(ctx, key+".txt")
		if err != nil {
			return domain.Image{}, fmt.Errorf("description: %w", err)
		}
		img.Description = strings.TrimSpace(string(desc))
	}
	return img, nil
}

// productNumber is the folder directly under the prefix, or "" for objects
// stored at the prefix root.
func (im *Importer) productNumber(key string) string {
	rel := strings.TrimPrefix(key, im.Prefix)
	rel = strings.TrimPrefix(rel, "/")
	dir := path.Dir(rel)
	if dir == "." || dir == "" {
		return ""
	}
	return strings.SplitN(dir, "/", 2)[0]
}

// ImageID derives a stable id from the category and file name, e.g.
// "01/Front View.png" becomes "img-01-front-view".
func ImageID(productNumber, key string) string {
	base := path.Base(key)
	base = slug.Make(strings.TrimSuffix(base, path.Ext(base)))
	if productNumber == "" {
		return "img-" + base
	}
	return "img-" + slug.Make(productNumber) + "-" + base
}
