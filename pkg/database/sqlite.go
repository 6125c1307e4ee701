package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// sqliteStore 是 DocumentStore 接口的 SQLite 实现
type sqliteStore struct {
	db     *sql.DB
	logger *log.Logger
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS processed_documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		processed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

// NewSQLiteStore 初始化 SQLite 数据库并返回 DocumentStore 接口实例
func NewSQLiteStore(dataSourceName string, log *log.Logger) (DocumentStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// 尝试创建表，如果不存在
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close() // 创建表失败也要关闭连接
		return nil, fmt.Errorf("failed to create processed_documents table: %w", err)
	}
	log.Printf("SQLite database initialized at: %s", dataSourceName)
	return &sqliteStore{db: db, logger: log}, nil
}

// Close 关闭数据库连接
func (s *sqliteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.logger.Println("SQLite database connection closed.")
		return err
	}
	return nil
}

// AddProcessedDocument 将文档路径标记为已处理
func (s *sqliteStore) AddProcessedDocument(docPath string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO processed_documents (path, processed_at) VALUES (?, ?)", docPath, time.Now())
	if err != nil {
		s.logger.Printf("ERROR: Failed to add document %s to processed_documents: %v", docPath, err)
		return fmt.Errorf("failed to add processed document %s: %w", docPath, err)
	}
	s.logger.Printf("Document %s marked as processed.", docPath)
	return nil
}

// IsDocumentProcessed 检查文档路径是否已处理
func (s *sqliteStore) IsDocumentProcessed(docPath string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM processed_documents WHERE path = ?", docPath).Scan(&count)
	if err != nil {
		s.logger.Printf("ERROR: Failed to check if document %s is processed: %v", docPath, err)
		return false, fmt.Errorf("failed to check processed status for %s: %w", docPath, err)
	}
	return count > 0, nil
}
