package chooser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/datatug/filechooser/pkg/files/aferofile"
)

func init() {
	logErr = func(v ...any) {}
}

// newMemStore creates an in-memory tree. Paths ending with "/" are directories.
func newMemStore(t *testing.T, paths ...string) *aferofile.Store {
	t.Helper()
	store := aferofile.NewMemStore()
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			require.NoError(t, store.Fs().MkdirAll(filepath.Clean(p), os.ModePerm))
			continue
		}
		require.NoError(t, store.Fs().MkdirAll(filepath.Dir(p), os.ModePerm))
		require.NoError(t, afero.WriteFile(store.Fs(), p, []byte(p), 0644))
	}
	return store
}

func mustInitialize(t *testing.T, store *aferofile.Store, cfg Config) *Browser {
	t.Helper()
	b, err := Initialize(context.Background(), store, cfg)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func names(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name
	}
	return result
}
