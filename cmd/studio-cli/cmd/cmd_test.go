package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/studiosite/internal/archive"
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		contentDir = ""
		inboxDB = "data/inbox.db"
		inboxLimit = 20
		inboxFormat = "table"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "studio-cli v")
}

func TestContentList_BuiltIn(t *testing.T) {
	out, err := run(t, "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Emberlight Games")
	assert.Contains(t, out, "Action Rpg")
	assert.Contains(t, out, "tidebound")
	assert.Contains(t, out, "Mara Okafor")
}

func TestContentValidate(t *testing.T) {
	t.Run("built-in content is valid", func(t *testing.T) {
		out, err := run(t, "content", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "games")
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := run(t, "content", "validate", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content is invalid")
	})
}

func TestLoadDocument_FromFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/"+content.FileName, []byte(`
studio:
  name: Tiny Studio
games:
  - slug: one
    title: One
    genre: puzzle
`), 0o644))

	doc, err := loadDocument(fs, "/site")
	require.NoError(t, err)

	var out bytes.Buffer
	printDocument(&out, doc)
	assert.Contains(t, out.String(), "Tiny Studio")
	assert.Contains(t, out.String(), "Puzzle")
}

func TestInboxList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.db")
	store, err := archive.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), domain.Submission{
		ID:       "sub-1",
		ClientID: "client-1",
		Fields: domain.MessageFields{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Content:  "Hello from the engine room",
		},
		SubmittedAt: time.Now().Add(-2 * time.Hour),
	}))
	require.NoError(t, store.Close())

	out, err := run(t, "inbox", "list", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "2 hours ago")

	out, err = run(t, "inbox", "list", "--db", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "sub-1"`)
}

func TestEventsCommand(t *testing.T) {
	out, err := run(t, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "contact.submitted")
	assert.Contains(t, out, "contact.rejected")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString(strings.Repeat("abcdefghij", 3), 10))
}
