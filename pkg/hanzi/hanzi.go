// Package hanzi 识别字符串的繁简汉字系统归属，并把中文文本
// 转写为拼音、注音符号（Bopomofo）和国际音标（IPA）。
//
// 所有转写都基于启动时加载一次、之后只读的静态数据表，
// 转写过程本身不做任何 I/O，可以安全地并发调用。
package hanzi

import (
	"sync"

	"github.com/yleoer/hanzi/pkg/data"
)

// Transliterator 在给定的数据表上做识别与转写。
// 数据表加载完成后不再修改，Transliterator 自身无状态。
type Transliterator struct {
	tables *data.Tables
}

// New 基于给定数据表创建 Transliterator。
// 测试时可以注入小的 fixture 数据表。
func New(tables *data.Tables) *Transliterator {
	return &Transliterator{tables: tables}
}

var (
	defaultOnce sync.Once
	defaultTr   *Transliterator
)

// Default 返回基于内置数据表的 Transliterator，只初始化一次。
func Default() *Transliterator {
	defaultOnce.Do(func() {
		defaultTr = New(data.MustEmbedded())
	})
	return defaultTr
}

// 下面是基于内置数据表的包级便捷函数。

// Identify 判断字符串的汉字系统归属。
func Identify(s string) Identity { return Default().Identify(s) }

// HasChinese 判断字符串是否包含汉字。
func HasChinese(s string) bool { return Default().HasChinese(s) }

// IsTraditional 判断字符串的汉字是否都能在繁体系统中使用。
func IsTraditional(s string) bool { return Default().IsTraditional(s) }

// IsSimplified 判断字符串的汉字是否都能在简体系统中使用。
func IsSimplified(s string) bool { return Default().IsSimplified(s) }

// ToPinyin 把字符串中的汉字转写为拼音。
func ToPinyin(s, delimiter string, allReadings, accented bool) string {
	return Default().ToPinyin(s, delimiter, allReadings, accented)
}

// ToZhuyin 把字符串中的汉字转写为注音符号。
func ToZhuyin(s, delimiter string, allReadings bool) string {
	return Default().ToZhuyin(s, delimiter, allReadings)
}

// ToIPA 把字符串中的汉字转写为国际音标。
func ToIPA(s, delimiter string, allReadings bool) string {
	return Default().ToIPA(s, delimiter, allReadings)
}
