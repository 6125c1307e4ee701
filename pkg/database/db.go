package database

// DocumentStore 定义文档处理状态存储接口
type DocumentStore interface {
	AddProcessedDocument(docPath string) error        // 将文档路径标记为已处理
	IsDocumentProcessed(docPath string) (bool, error) // 检查文档路径是否已处理
	Close() error                                     // 关闭数据库连接
}
