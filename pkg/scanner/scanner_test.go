package scanner

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("乙"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("甲"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("丙"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.flac"), []byte{0}, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	s := NewDocumentScanner(log.New(io.Discard, "", 0))
	docs, err := s.ListDocuments(dir)
	require.NoError(t, err)

	// 只列一级目录下的文本文件，结果有序
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "notes.md"),
	}, docs)
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("你好"), 0644))

	s := NewDocumentScanner(log.New(io.Discard, "", 0))
	content, err := s.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "你好", content)

	_, err = s.ReadDocument(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
