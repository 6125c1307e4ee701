package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestReadTextFileContentUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utf8.txt")
	require.NoError(t, os.WriteFile(path, []byte("你好，世界"), 0644))

	content, err := ReadTextFileContent(path)
	require.NoError(t, err)
	assert.Equal(t, "你好，世界", content)
}

func TestReadTextFileContentBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.txt")
	require.NoError(t, os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, []byte("你好")...), 0644))

	content, err := ReadTextFileContent(path)
	require.NoError(t, err)
	assert.Equal(t, "你好", content)
}

func TestReadTextFileContentGBK(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().String("你好，世界")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "gbk.txt")
	require.NoError(t, os.WriteFile(path, []byte(gbk), 0644))

	content, err := ReadTextFileContent(path)
	require.NoError(t, err)
	assert.Equal(t, "你好，世界", content)
}

func TestReadTextFileContentMissing(t *testing.T) {
	_, err := ReadTextFileContent(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"普通文件名", "普通文件名"},
		{"a/b\\c", "a_b_c"},
		{"a:b*c?d\"e<f>g|h", "abcdefgh"},
		{"  多个   空格  ", "多个 空格"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.input))
	}
}

func TestIsRelevantTextFile(t *testing.T) {
	assert.True(t, IsRelevantTextFile("/watch/文章.txt"))
	assert.True(t, IsRelevantTextFile("/watch/notes.MD"))
	assert.False(t, IsRelevantTextFile("/watch/song.flac"))
	assert.False(t, IsRelevantTextFile("/watch/.hidden.txt"))
	assert.False(t, IsRelevantTextFile("/watch/noext"))
}
