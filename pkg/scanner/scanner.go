package scanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/yleoer/hanzi/pkg/util"
)

// DocumentScanner 负责发现监听目录中的待转写文本文件并读取其内容
type DocumentScanner struct {
	logger *log.Logger
}

// NewDocumentScanner 创建一个新的 DocumentScanner 实例
func NewDocumentScanner(logger *log.Logger) *DocumentScanner {
	return &DocumentScanner{logger: logger}
}

// ListDocuments 列出目录下所有待转写的文本文件（只看一级目录）
func (s *DocumentScanner) ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch directory %s: %w", dir, err)
	}
	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if util.IsRelevantTextFile(path) {
			docs = append(docs, path)
		}
	}
	sort.Strings(docs)
	return docs, nil
}

// ReadDocument 读取文档内容，自动处理 UTF-8/GBK 编码
func (s *DocumentScanner) ReadDocument(path string) (string, error) {
	content, err := util.ReadTextFileContent(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return content, nil
}
