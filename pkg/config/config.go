package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	WatchDir               string        `json:"watch_dir"`                // 监听目录，投放待转写的文本文件
	OutputDir              string        `json:"output_dir"`               // 转写结果存放目录
	DataDir                string        `json:"data_dir"`                 // SQLite数据库文件存放目录
	TableDir               string        `json:"table_dir"`                // 外部数据表目录，为空时使用内置数据表
	DBFileName             string        `json:"db_file_name"`             // SQLite数据库文件名
	DBPath                 string        `json:"-"`                        // 完整的数据库文件路径
	Delimiter              string        `json:"delimiter"`                // 词边界分隔符
	AllReadings            bool          `json:"all_readings"`             // 是否输出全部候选读音
	Formats                []string      `json:"formats"`                  // 输出格式：pinyin/pinyin-numbered/zhuyin/ipa
	Normalize              string        `json:"normalize"`                // 转写前的繁简归一化：t2s/s2t，为空不归一化
	StabilityCheckInterval time.Duration `json:"stability_check_interval"` // 每次检查的间隔
	StabilityQuietDuration time.Duration `json:"stability_quiet_duration"` // 文件在多长时间内没有变化才算稳定
	StabilityMaxWait       time.Duration `json:"stability_max_wait"`       // 最长等待文件稳定的时间
}

const (
	watchDir  = "/app/watch"
	outputDir = "/app/output"
	dataDir   = "/app/data"

	dbFileName = "hanzi.db"
	delimiter  = " "

	// 文件稳定性检查相关参数
	stabilityCheckInterval = 5 * time.Second
	stabilityQuietDuration = 30 * time.Second
	stabilityMaxWait       = 1 * time.Hour
)

// validFormats 允许的输出格式。
var validFormats = map[string]struct{}{
	"pinyin":          {},
	"pinyin-numbered": {},
	"zhuyin":          {},
	"ipa":             {},
}

// LoadConfig 从环境变量或默认值加载配置
func LoadConfig() (*Config, error) {
	// 尝试加载 .env 文件
	_ = godotenv.Load()

	cfg := &Config{
		WatchDir:               os.Getenv("WATCH_DIR"),
		OutputDir:              os.Getenv("OUTPUT_DIR"),
		DataDir:                os.Getenv("DATA_DIR"),
		TableDir:               os.Getenv("TABLE_DIR"),
		DBFileName:             os.Getenv("DB_FILE_NAME"),
		Delimiter:              os.Getenv("DELIMITER"),
		AllReadings:            parseBoolOrDefault(os.Getenv("ALL_READINGS"), false),
		Normalize:              os.Getenv("NORMALIZE"),
		StabilityCheckInterval: parseDurationOrDefault(os.Getenv("STABILITY_CHECK_INTERVAL"), stabilityCheckInterval),
		StabilityQuietDuration: parseDurationOrDefault(os.Getenv("STABILITY_QUIET_DURATION"), stabilityQuietDuration),
		StabilityMaxWait:       parseDurationOrDefault(os.Getenv("STABILITY_MAX_WAIT"), stabilityMaxWait),
	}

	// 设置默认值
	if cfg.WatchDir == "" {
		cfg.WatchDir = watchDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = outputDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.DBFileName == "" {
		cfg.DBFileName = dbFileName
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = delimiter
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, cfg.DBFileName)

	formats := strings.Split(os.Getenv("FORMATS"), ",")
	for _, f := range formats {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := validFormats[f]; !ok {
			return nil, fmt.Errorf("invalid output format %q (valid: pinyin, pinyin-numbered, zhuyin, ipa)", f)
		}
		cfg.Formats = append(cfg.Formats, f)
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"pinyin"}
	}

	switch cfg.Normalize {
	case "", "t2s", "s2t":
	default:
		return nil, fmt.Errorf("invalid NORMALIZE value %q (valid: t2s, s2t or empty)", cfg.Normalize)
	}

	// 确认目录存在
	if err := os.MkdirAll(cfg.WatchDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create watch directory %s: %w", cfg.WatchDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", cfg.DataDir, err)
	}
	log.Printf("Configuration loaded: WatchDir=%s, OutputDir=%s, DataDir=%s, DBPath=%s, Formats=%v",
		cfg.WatchDir, cfg.OutputDir, cfg.DataDir, cfg.DBPath, cfg.Formats)
	return cfg, nil
}

func parseDurationOrDefault(s string, defaultValue time.Duration) time.Duration {
	if s == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Warning: Could not parse duration '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return d
}

func parseBoolOrDefault(s string, defaultValue bool) bool {
	if s == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Warning: Could not parse bool '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return b
}
