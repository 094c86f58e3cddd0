package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputDirectory(t *testing.T) {
	validator := NewFileValidator(nil)

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr string
	}{
		{
			name: "existing directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
		},
		{
			name: "missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nao_existe")
			},
			wantErr: "does not exist",
		},
		{
			name: "path is a file",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				path := filepath.Join(dir, "arquivo.csv")
				require.NoError(t, os.WriteFile(path, []byte("a"), 0644))
				return path
			},
			wantErr: "is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateInputDirectory(tt.setup(t))
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateOutputDirectory(t *testing.T) {
	validator := NewFileValidator(nil)

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "saida", "relatorios")

		err := validator.ValidateOutputDirectory(dir)
		require.NoError(t, err)

		info, statErr := os.Stat(dir)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})

	t.Run("existing directory is accepted", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, validator.ValidateOutputDirectory(dir))
	})

	t.Run("write test file is cleaned up", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, validator.ValidateOutputDirectory(dir))

		_, err := os.Stat(filepath.Join(dir, ".write_test"))
		assert.True(t, os.IsNotExist(err))
	})
}
