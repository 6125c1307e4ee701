package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ReadTextFileContent 智能读取文本文件内容，自动处理UTF-8和GBK编码
// 返回的内容保证是UTF-8编码的字符串。
func ReadTextFileContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	gbkReader := transform.NewReader(bytes.NewReader(data), simplifiedchinese.GBK.NewDecoder())
	decodedData, err := io.ReadAll(gbkReader)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as GBK: %w", filepath.Base(path), err)
	}

	return string(decodedData), nil
}

// SanitizeFileName 清理文件名，移除或替换不适用于文件路径的字符
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")

	// 移除其他不安全的文件名字符 (Windows/Linux通用不推荐的字符)
	invalidChars := []string{":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range invalidChars {
		name = strings.ReplaceAll(name, char, "")
	}
	name = strings.TrimSpace(name)
	name = strings.Join(strings.Fields(name), " ")
	return name
}

// IsDirectory 辅助函数，检查路径是否为目录
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsRelevantTextFile 辅助函数，判断文件是否为我们关心的待转写文本文件
func IsRelevantTextFile(filePath string) bool {
	base := filepath.Base(filePath)
	if strings.HasPrefix(base, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".txt", ".md":
		return true
	default:
		return false
	}
}
