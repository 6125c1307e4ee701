package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/yleoer/hanzi/pkg/config"
	"github.com/yleoer/hanzi/pkg/converter"
	"github.com/yleoer/hanzi/pkg/data"
	"github.com/yleoer/hanzi/pkg/database"
	"github.com/yleoer/hanzi/pkg/hanzi"
	"github.com/yleoer/hanzi/pkg/processor"
	"github.com/yleoer/hanzi/pkg/scanner"
	"github.com/yleoer/hanzi/pkg/scheduler"
	"github.com/yleoer/hanzi/pkg/util"
)

func main() {
	// 1. 初始化日志器
	logger := log.New(os.Stdout, "[Hanzi] ", log.LstdFlags|log.Lshortfile)
	logger.Println("Starting Hanzi transliteration service...")
	// 2. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	// 3. 初始化所有依赖服务
	// 3.1 静态数据表。数据表损坏时必须立刻失败：
	// 用不完整的词表悄悄给出错误读音比失败更糟
	tables, err := data.LoadOrEmbedded(cfg.TableDir)
	if err != nil {
		logger.Fatalf("Failed to load transliteration data tables: %v", err)
	}
	logger.Printf("Data tables loaded: %d words, %d characters, %d/%d traditional/simplified characters.",
		len(tables.Words), len(tables.Characters), len(tables.Traditional), len(tables.Simplified))
	tr := hanzi.New(tables)
	// 3.2 繁简体转换器，仅在配置了归一化时初始化 OpenCC
	var textConverter converter.TextConverter
	if cfg.Normalize != "" {
		textConverter, err = converter.NewOpenCCConverter(logger)
		if err != nil {
			logger.Fatalf("Failed to initialize OpenCC converter: %v", err)
		}
	} else {
		textConverter = converter.NewNoopConverter()
	}
	// 3.3 数据库存储
	dbStore, err := database.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbStore.Close()
	// 3.4 文档扫描器
	docScanner := scanner.NewDocumentScanner(logger)
	// 3.5 转写处理器 (依赖于 Transliterator, TextConverter, Config)
	docProcessor := processor.NewOutputProcessor(tr, textConverter, cfg, logger)
	// 4. 初始化任务调度器
	taskScheduler := scheduler.NewTaskScheduler(
		cfg,
		dbStore,
		docScanner,
		docProcessor,
		logger,
	)
	// 5. 执行初始扫描
	taskScheduler.InitialScan(cfg.WatchDir)
	// 6. 启动文件系统监听器
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatalf("Error creating file watcher: %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(cfg.WatchDir); err != nil {
		logger.Fatalf("Error adding watch path %s to watcher: %v", cfg.WatchDir, err)
	}
	logger.Printf("Monitoring watch directory %s for new documents...", cfg.WatchDir)
	// 7. 处理文件系统事件
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				logger.Printf("Watcher event: %s, on %s", event.Op.String(), event.Name)
				// 只关注监听目录下文本文件的新建和写入
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if filepath.Dir(event.Name) != cfg.WatchDir {
					logger.Printf("  -> Event %s not in watch directory. Ignoring.", event.Name)
					continue
				}
				if util.IsDirectory(event.Name) || !util.IsRelevantTextFile(event.Name) {
					logger.Printf("  -> %s is not a relevant text file. Ignoring.", event.Name)
					continue
				}
				logger.Printf("  -> Document change detected: %s. Scheduling scan.", event.Name)
				taskScheduler.TriggerScan(event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("ERROR: Watcher error: %v", err)
			}
		}
	}()
	// 保持主Goroutine运行
	logger.Println("Service is running. Press Ctrl+C to exit.")
	<-make(chan struct{})
}
