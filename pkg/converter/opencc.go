package converter

import (
	"fmt"
	"log"

	"github.com/liuzl/gocc"
)

// openCCConverter 是 TextConverter 的一个实现，双向持有 OpenCC 转换器
type openCCConverter struct {
	t2s    *gocc.OpenCC
	s2t    *gocc.OpenCC
	logger *log.Logger
}

// NewOpenCCConverter 初始化并返回一个 OpenCC 转换器实例
func NewOpenCCConverter(log *log.Logger) (TextConverter, error) {
	// t2s.json 代表 Traditional Chinese to Simplified Chinese，s2t 反之
	t2s, err := gocc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenCC t2s converter: %w", err)
	}
	s2t, err := gocc.New("s2t")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenCC s2t converter: %w", err)
	}
	log.Println("OpenCC converters (t2s, s2t) initialized.")
	return &openCCConverter{t2s: t2s, s2t: s2t, logger: log}, nil
}

// ToSimplified 将繁体中文转换为简体
func (c *openCCConverter) ToSimplified(text string) string {
	return c.convert(c.t2s, text)
}

// ToTraditional 将简体中文转换为繁体
func (c *openCCConverter) ToTraditional(text string) string {
	return c.convert(c.s2t, text)
}

func (c *openCCConverter) convert(cc *gocc.OpenCC, text string) string {
	out, err := cc.Convert(text)
	if err != nil {
		c.logger.Printf("WARN: Failed to convert text %q: %v", text, err)
		return text // 在转换失败时返回原文
	}
	return out
}
