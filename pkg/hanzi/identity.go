package hanzi

// Identity 表示一个字符串所属的汉字系统。
type Identity int

const (
	// Unknown 字符串中没有任何已知汉字。
	Unknown Identity = iota
	// Traditional 所有汉字都是繁体。
	Traditional
	// Simplified 所有汉字都是简体。
	Simplified
	// Both 所有汉字在繁简两个系统中通用。
	Both
	// Mixed 繁体专用字和简体专用字混杂。
	Mixed
)

func (i Identity) String() string {
	switch i {
	case Traditional:
		return "TRADITIONAL"
	case Simplified:
		return "SIMPLIFIED"
	case Both:
		return "BOTH"
	case Mixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// hanziIn 提取字符串中属于已知汉字字符集的字符（去重）。
// 标点、拉丁字母等一律忽略。
func (t *Transliterator) hanziIn(s string) map[rune]struct{} {
	found := make(map[rune]struct{})
	for _, r := range s {
		if t.tables.IsHanzi(r) {
			found[r] = struct{}{}
		}
	}
	return found
}

// Identify 判断字符串的汉字系统归属。
//
// 通用字集是繁体集和简体集的交集，所以必须先检查 Both，
// 再检查两个专用系统，否则通用字会被误判。
func (t *Transliterator) Identify(s string) Identity {
	found := t.hanziIn(s)
	if len(found) == 0 {
		return Unknown
	}
	if subsetOf(found, t.tables.Shared) {
		return Both
	}
	if subsetOf(found, t.tables.Traditional) {
		return Traditional
	}
	if subsetOf(found, t.tables.Simplified) {
		return Simplified
	}
	return Mixed
}

// HasChinese 判断字符串是否包含汉字。
// 等价于 Identify(s) != Unknown，但遇到第一个汉字就返回，开销更小。
func (t *Transliterator) HasChinese(s string) bool {
	for _, r := range s {
		if t.tables.IsHanzi(r) {
			return true
		}
	}
	return false
}

// IsTraditional 判断字符串的汉字是否都能在繁体系统中使用。
func (t *Transliterator) IsTraditional(s string) bool {
	id := t.Identify(s)
	return id == Traditional || id == Both
}

// IsSimplified 判断字符串的汉字是否都能在简体系统中使用。
func (t *Transliterator) IsSimplified(s string) bool {
	id := t.Identify(s)
	return id == Simplified || id == Both
}

func subsetOf(sub map[rune]struct{}, super map[rune]struct{}) bool {
	for r := range sub {
		if _, ok := super[r]; !ok {
			return false
		}
	}
	return true
}
