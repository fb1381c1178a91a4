package virtualenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noserun/internal/config"
)

func makeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, file := range files {
		full := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("# activate\n"), 0644))
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		expected []string
	}{
		{"absolute path", "/a/b/c", []string{"/a/b/c", "/a/b", "/a"}},
		{"trailing slash", "/a/b/", []string{"/a/b", "/a"}},
		{"relative path", "a/b", []string{"a/b", "a"}},
		{"root only", "/", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Candidates(tt.start))
		})
	}
}

func TestLocator_Locate(t *testing.T) {
	locator := NewLocator(config.New())

	t.Run("finds activate in ancestor", func(t *testing.T) {
		root := t.TempDir()
		makeTree(t, root, "a/b/bin/activate", "a/b/c/test_foo.py")
		start := filepath.Join(root, "a", "b", "c")

		env, err := locator.Locate(start)
		require.NoError(t, err)
		assert.True(t, env.Found())
		assert.Equal(t, filepath.Join(root, "a", "b"), env.Root)
		assert.Equal(t, "source "+filepath.Join(root, "a", "b", "bin", "activate"), env.ActivationCommand())
		assert.Equal(t, start, env.Dir)
	})

	t.Run("start directory is checked first", func(t *testing.T) {
		root := t.TempDir()
		makeTree(t, root, "bin/activate", "inner/bin/activate")
		start := filepath.Join(root, "inner")

		env, err := locator.Locate(start)
		require.NoError(t, err)
		assert.Equal(t, start, env.Root)
	})

	t.Run("bin without activate is skipped", func(t *testing.T) {
		root := t.TempDir()
		makeTree(t, root, "bin/activate", "proj/bin/python", "proj/pkg/test_foo.py")

		env, err := locator.Locate(filepath.Join(root, "proj", "pkg"))
		require.NoError(t, err)
		assert.Equal(t, root, env.Root)
	})

	t.Run("bin file is not a directory", func(t *testing.T) {
		root := t.TempDir()
		makeTree(t, root, "bin/activate", "proj/bin")

		env, err := locator.Locate(filepath.Join(root, "proj"))
		require.NoError(t, err)
		assert.Equal(t, root, env.Root)
	})

	t.Run("no environment in ancestor chain", func(t *testing.T) {
		root := t.TempDir()
		makeTree(t, root, "proj/pkg/test_foo.py")

		env, err := locator.Locate(filepath.Join(root, "proj", "pkg"))
		require.NoError(t, err)
		assert.False(t, env.Found())
		assert.Empty(t, env.ActivationCommand())
	})

	t.Run("missing start directory is an error", func(t *testing.T) {
		_, err := locator.Locate(filepath.Join(t.TempDir(), "does", "not", "exist"))
		assert.Error(t, err)
	})

	t.Run("custom bin dir and script", func(t *testing.T) {
		cfg := config.New()
		cfg.BinDir = "Scripts"
		cfg.ActivateScript = "activate.sh"
		root := t.TempDir()
		makeTree(t, root, "Scripts/activate.sh", "src/x.py")

		env, err := NewLocator(cfg).Locate(filepath.Join(root, "src"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "Scripts", "activate.sh"), env.Activate)
	})
}
