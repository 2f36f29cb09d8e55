package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrib"
	"scrib/pkg/adapters/localfile"
	"scrib/pkg/core"
)

func setupService(t *testing.T, opts ...scrib.Option) (*core.Service, string) {
	t.Helper()
	tmpDir := t.TempDir()

	baseOpts := []scrib.Option{scrib.WithAutoInit(true)}
	finalOpts := append(baseOpts, opts...)

	service, err := scrib.New(tmpDir, finalOpts...)
	require.NoError(t, err, "failed to init service")
	return service, tmpDir
}

func TestService_WriteRoundTrip(t *testing.T) {
	service, tmpDir := setupService(t)
	ctx := context.Background()

	note, err := service.Create(ctx, "Integration Test", "This note hits the disk.", []string{"ci", "test"})
	require.NoError(t, err)
	require.NotEmpty(t, note.ID)

	// The blob must exist on disk after the first write.
	blobPath := filepath.Join(tmpDir, localfile.StoreFile)
	_, err = os.Stat(blobPath)
	require.NoError(t, err, "store blob was not created at %s", blobPath)

	got, err := service.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Integration Test", got.Title)
	assert.Equal(t, "This note hits the disk.", got.Content)
	assert.Equal(t, []string{"ci", "test"}, got.Tags)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestService_DeleteList(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		n, err := service.Create(ctx, title, "content of "+title, nil)
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	list, err := service.List(ctx, core.Query{})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	require.NoError(t, service.Delete(ctx, ids[1]))

	_, err = service.Get(ctx, ids[1])
	assert.ErrorIs(t, err, core.ErrNotFound)

	list, err = service.List(ctx, core.Query{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_ReadOnlyRoundTrip(t *testing.T) {
	// Seed a vault with a writable service, then reopen it read-only.
	tmpDir := t.TempDir()

	writer, err := scrib.New(tmpDir, scrib.WithAutoInit(true))
	require.NoError(t, err)

	ctx := context.Background()
	seeded, err := writer.Create(ctx, "Frozen", "published content", []string{"public"})
	require.NoError(t, err)

	reader, err := scrib.New(tmpDir, scrib.WithReadOnly(true))
	require.NoError(t, err)

	// Reads work.
	got, err := reader.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frozen", got.Title)

	tags, err := reader.Tags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "public", tags[0].Name)

	// Every mutation is rejected.
	_, err = reader.Create(ctx, "nope", "", nil)
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, err = reader.Update(ctx, seeded.ID, "nope", "", nil)
	assert.ErrorIs(t, err, core.ErrReadOnly)

	assert.ErrorIs(t, reader.Delete(ctx, seeded.ID), core.ErrReadOnly)
	assert.ErrorIs(t, reader.Clear(ctx), core.ErrReadOnly)

	// The blob on disk is untouched.
	fresh, err := writer.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "published content", fresh.Content)
}

func TestService_MustExist(t *testing.T) {
	tmpDir := t.TempDir()
	nonExistent := filepath.Join(tmpDir, "does-not-exist")

	_, err := scrib.New(nonExistent, scrib.WithMustExist(true))
	assert.Error(t, err, "expected New to fail with MustExist for non-existent path")
}

func TestService_ImportExport(t *testing.T) {
	source, _ := setupService(t)
	target, _ := setupService(t)
	ctx := context.Background()

	_, err := source.Create(ctx, "exported one", "a", []string{"x"})
	require.NoError(t, err)
	_, err = source.Create(ctx, "exported two", "b", nil)
	require.NoError(t, err)

	exportDir := t.TempDir()
	path, err := source.ExportFile(ctx, exportDir)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	count, err := target.Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := target.List(ctx, core.Query{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
