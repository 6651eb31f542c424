package imagesync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/imagesync"
	"marketplace/internal/repos"
)

type memBucket struct {
	objects map[string][]byte
	broken  map[string]bool
}

func (b *memBucket) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range b.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (b *memBucket) Get(_ context.Context, key string) ([]byte, error) {
	if b.broken[key] {
		return nil, errors.New("read timeout")
	}
	data, ok := b.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func newImageRepo(t *testing.T) *repos.ImageRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewImageRepo(db)
}

func TestRunImportsBucketLayout(t *testing.T) {
	ctx := context.Background()
	bucket := &memBucket{objects: map[string][]byte{
		"images/01/Front View.png":     []byte("png-1"),
		"images/01/Front View.png.txt": []byte("  A folded white towel.\n"),
		"images/02/side.JPG":           []byte("jpg-2"),
		"images/02/notes.md":           []byte("ignored"),
		"images/loose.webp":            []byte("webp"),
		"other/01/x.png":               []byte("outside prefix"),
	}}
	images := newImageRepo(t)

	res, err := imagesync.NewImporter(bucket, images, "/images/").Run(ctx)
	require.NoError(t, err)
	require.Equal(t, imagesync.Result{Imported: 3}, res)

	got, err := images.ByIDs(ctx, []string{"img-01-front-view", "img-02-side", "img-loose"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	byID := map[string]string{}
	for _, img := range got {
		byID[img.ID] = img.ProductNumber
	}
	require.Equal(t, map[string]string{"img-01-front-view": "01", "img-02-side": "02", "img-loose": ""}, byID)

	cat, err := images.ListByCategory(ctx, "01")
	require.NoError(t, err)
	require.Len(t, cat, 1)
	require.Equal(t, "A folded white towel.", cat[0].Description)

	// second run finds everything in place
	res, err = imagesync.NewImporter(bucket, images, "images").Run(ctx)
	require.NoError(t, err)
	require.Equal(t, imagesync.Result{Skipped: 3}, res)
}

func TestRunCountsFailuresAndContinues(t *testing.T) {
	bucket := &memBucket{
		objects: map[string][]byte{
			"images/03/a.png": []byte("a"),
			"images/03/b.png": []byte("b"),
		},
		broken: map[string]bool{"images/03/a.png": true},
	}
	images := newImageRepo(t)

	res, err := imagesync.NewImporter(bucket, images, "images").Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, imagesync.Result{Imported: 1, Failed: 1}, res)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	bucket := &memBucket{objects: map[string][]byte{"images/01/a.png": []byte("a")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := imagesync.NewImporter(bucket, newImageRepo(t), "images").Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestImageID(t *testing.T) {
	require.Equal(t, "img-01-front-view", imagesync.ImageID("01", "images/01/Front View.png"))
	require.Equal(t, "img-loose", imagesync.ImageID("", "loose.webp"))
}
