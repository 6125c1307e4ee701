package processor

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/yleoer/hanzi/pkg/config"
	"github.com/yleoer/hanzi/pkg/converter"
	"github.com/yleoer/hanzi/pkg/hanzi"
	"github.com/yleoer/hanzi/pkg/util"
)

// OutputProcessor 负责把单个文档转写为配置的各种输出格式并写入输出目录
type OutputProcessor struct {
	tr     *hanzi.Transliterator
	tc     converter.TextConverter
	cfg    *config.Config
	logger *log.Logger
}

// NewOutputProcessor 创建一个新的 OutputProcessor 实例
func NewOutputProcessor(tr *hanzi.Transliterator, tc converter.TextConverter, cfg *config.Config, logger *log.Logger) *OutputProcessor {
	return &OutputProcessor{tr: tr, tc: tc, cfg: cfg, logger: logger}
}

// ProcessDocument 转写一个文档。每种输出格式各生成一个文件：
//
//	<文档名>.pinyin.txt / <文档名>.zhuyin.txt / ...
func (p *OutputProcessor) ProcessDocument(docPath, content string) error {
	// 繁简归一化在转写之前做，词表里繁简词条都有，
	// 但归一化能让混合输入得到一致的读音
	switch p.cfg.Normalize {
	case "t2s":
		content = p.tc.ToSimplified(content)
	case "s2t":
		content = p.tc.ToTraditional(content)
	}

	p.logger.Printf("  Document %s identity: %s", filepath.Base(docPath), p.tr.Identify(content))

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	base = util.SanitizeFileName(base)
	for _, format := range p.cfg.Formats {
		rendered, err := p.render(content, format)
		if err != nil {
			return err
		}
		outPath := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("%s.%s.txt", base, format))
		if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outPath, err)
		}
		p.logger.Printf("  -> Successfully created %s", outPath)
	}
	return nil
}

// render 按格式执行转写
func (p *OutputProcessor) render(content, format string) (string, error) {
	delim := p.cfg.Delimiter
	all := p.cfg.AllReadings
	switch format {
	case "pinyin":
		return p.tr.ToPinyin(content, delim, all, true), nil
	case "pinyin-numbered":
		return p.tr.ToPinyin(content, delim, all, false), nil
	case "zhuyin":
		return p.tr.ToZhuyin(content, delim, all), nil
	case "ipa":
		return p.tr.ToIPA(content, delim, all), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
