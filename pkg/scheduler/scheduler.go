package scheduler

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/yleoer/hanzi/pkg/config"
	"github.com/yleoer/hanzi/pkg/database"
	"github.com/yleoer/hanzi/pkg/processor"
	"github.com/yleoer/hanzi/pkg/scanner"
)

// TaskScheduler 负责调度文档的扫描和转写任务
type TaskScheduler struct {
	cfg               *config.Config
	dbStore           database.DocumentStore
	docScanner        *scanner.DocumentScanner
	docProcessor      *processor.OutputProcessor
	logger            *log.Logger
	scanMutex         sync.Mutex // 保护转写过程
	pendingScans      map[string]*time.Timer
	pendingScansMutex sync.Mutex // 保护 pendingScans map
}

// NewTaskScheduler 创建一个新的 TaskScheduler 实例
func NewTaskScheduler(
	cfg *config.Config,
	dbStore database.DocumentStore,
	docScanner *scanner.DocumentScanner,
	docProcessor *processor.OutputProcessor,
	logger *log.Logger,
) *TaskScheduler {
	return &TaskScheduler{
		cfg:          cfg,
		dbStore:      dbStore,
		docScanner:   docScanner,
		docProcessor: docProcessor,
		logger:       logger,
		pendingScans: make(map[string]*time.Timer),
	}
}

// InitialScan 对监听目录进行初始扫描
func (ts *TaskScheduler) InitialScan(watchDir string) {
	ts.logger.Println("Performing initial scan for unprocessed documents in watch directory...")
	docs, err := ts.docScanner.ListDocuments(watchDir)
	if err != nil {
		ts.logger.Printf("ERROR: Error listing documents in %s for initial scan: %v", watchDir, err)
		return
	}
	for _, docPath := range docs {
		processed, err := ts.dbStore.IsDocumentProcessed(docPath)
		if err != nil {
			ts.logger.Printf("ERROR: Error checking processed status for %s: %v", docPath, err)
		}
		if !processed {
			ts.logger.Printf("  -> Found unprocessed document: %s. Scheduling scan.", docPath)
			ts.TriggerScan(docPath)
		} else {
			ts.logger.Printf("  -> Document %s already processed. Skipping.", docPath)
		}
	}
	ts.logger.Println("Initial scan completed.")
}

// TriggerScan 将一个文档添加到延迟处理队列
func (ts *TaskScheduler) TriggerScan(docPath string) {
	ts.pendingScansMutex.Lock()
	defer ts.pendingScansMutex.Unlock()
	// 如果这个文档已经有一个待定的任务，就重置计时器
	if timer, ok := ts.pendingScans[docPath]; ok {
		timer.Stop()
	}
	// 启动一个新的计时器，延迟一段时间后执行处理
	timer := time.AfterFunc(ts.cfg.StabilityCheckInterval, func() {
		ts.performScan(docPath)
		// 处理完成后从队列中移除
		ts.pendingScansMutex.Lock()
		delete(ts.pendingScans, docPath)
		ts.pendingScansMutex.Unlock()
	})
	ts.pendingScans[docPath] = timer
	ts.logger.Printf("Scheduled scan for %s in %v", docPath, ts.cfg.StabilityCheckInterval)
}

// performScan 执行实际的文档读取和转写
func (ts *TaskScheduler) performScan(docPath string) {
	ts.scanMutex.Lock() // 获取全局锁，避免并发处理同一个文档
	defer ts.scanMutex.Unlock()
	ts.logger.Printf("-> Processing document: %s", docPath)
	// --- 文件稳定性检查 ---
	if !ts.waitForFileStability(docPath) {
		ts.logger.Printf("  -> Document %s is still changing. Rescheduling.", docPath)
		ts.TriggerScan(docPath) // 重新调度一次
		return
	}
	// --- 结束文件稳定性检查 ---
	processed, err := ts.dbStore.IsDocumentProcessed(docPath)
	if err != nil {
		ts.logger.Printf("ERROR: Error checking processed status for %s before scan: %v", docPath, err)
		// 即使出错也尝试处理，避免遗漏
	}
	if processed {
		ts.logger.Printf("  -> Document %s already processed (after stability check). Skipping.", docPath)
		return
	}
	content, err := ts.docScanner.ReadDocument(docPath)
	if err != nil {
		ts.logger.Printf("ERROR: Error reading document %s: %v", docPath, err)
		return
	}
	if err := ts.docProcessor.ProcessDocument(docPath, content); err != nil {
		ts.logger.Printf("ERROR: Error processing document %s: %v", docPath, err)
		return
	}
	ts.logger.Printf("Successfully processed document %s.", docPath)
	ts.dbStore.AddProcessedDocument(docPath) // 处理成功，标记为已处理
}

// waitForFileStability 检查文件是否在静默期内没有变化，
// 防止处理还没复制完的文件
func (ts *TaskScheduler) waitForFileStability(docPath string) bool {
	ts.logger.Printf("  -> Waiting for %s to stabilize for %v...", docPath, ts.cfg.StabilityQuietDuration)
	var lastSize int64 = -1
	var lastMod time.Time
	quietSince := time.Now()
	startOverallWait := time.Now()
	for time.Since(startOverallWait) < ts.cfg.StabilityMaxWait {
		info, err := os.Stat(docPath)
		if err != nil {
			if os.IsNotExist(err) {
				ts.logger.Printf("  -> Document %s disappeared during stability check.", docPath)
				return false
			}
			ts.logger.Printf("ERROR: Error getting file info for %s: %v", docPath, err)
			time.Sleep(ts.cfg.StabilityCheckInterval)
			continue
		}
		if info.Size() != lastSize || !info.ModTime().Equal(lastMod) {
			lastSize = info.Size()
			lastMod = info.ModTime()
			quietSince = time.Now()
		} else if time.Since(quietSince) >= ts.cfg.StabilityQuietDuration {
			ts.logger.Printf("  -> Document %s is stable for at least %v.", docPath, ts.cfg.StabilityQuietDuration)
			return true
		}
		time.Sleep(ts.cfg.StabilityCheckInterval)
	}
	ts.logger.Printf("  -> Max wait time for stability exceeded for %s.", docPath)
	return false
}
