package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFile_ReadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "finance_data.json"))

	_, err := f.Read(context.Background())
	require.ErrorIs(t, err, NotFoundErr)
}

func TestFile_WriteRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finance_data.json")
	f := NewFile(path)

	err := f.Write(context.Background(), []byte("first"))
	if err != nil {
		t.Fatal(err)
	}
	err = f.Write(context.Background(), []byte("second"))
	if err != nil {
		t.Fatal(err)
	}

	data, err := f.Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	// no temp files are left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, entries, 1)
	require.Equal(t, "finance_data.json", entries[0].Name())
}

func TestFile_WriteMissingDirectory(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing", "finance_data.json"))

	err := f.Write(context.Background(), []byte("{}"))
	require.Error(t, err)

	_, err = f.Read(context.Background())
	require.ErrorIs(t, err, NotFoundErr)
}

func TestFile_ReadDirectory(t *testing.T) {
	f := NewFile(t.TempDir())

	_, err := f.Read(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, NotFoundErr)
}
