package converter

// TextConverter 定义繁简文本转换器接口
type TextConverter interface {
	ToSimplified(text string) string  // 将繁体中文转换为简体
	ToTraditional(text string) string // 将简体中文转换为繁体
}

// noopConverter 不做任何转换，关闭归一化时使用。
type noopConverter struct{}

// NewNoopConverter 返回一个原样返回输入的 TextConverter。
func NewNoopConverter() TextConverter {
	return noopConverter{}
}

func (noopConverter) ToSimplified(text string) string  { return text }
func (noopConverter) ToTraditional(text string) string { return text }
