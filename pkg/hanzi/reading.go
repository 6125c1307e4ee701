package hanzi

import (
	"unicode/utf8"
)

// resolution 是读音解析的结果，两种粒度取其一：
// word 非 nil 表示整个片段命中词表，读音直接可用；
// 否则 chars 给出逐字回退的结果。
type resolution struct {
	word  []string
	chars []charUnit
}

// charUnit 是逐字回退中的一个字：有读音时 readings 非空，
// 字典里查不到的字通过 literal 原样传递。
type charUnit struct {
	literal  string
	readings []string
}

// resolve 解析一个连续的汉字片段。先整体查词表——词的读音
// 比逐字拼接更准（连读变调、多音字在词里通常只有一个读法），
// 查不到再退化为逐字查询。
func (t *Transliterator) resolve(span string) resolution {
	if readings, ok := t.tables.Words[span]; ok {
		return resolution{word: readings}
	}
	units := make([]charUnit, 0, utf8.RuneCountInString(span))
	for _, r := range span {
		if readings, ok := t.tables.Characters[string(r)]; ok {
			units = append(units, charUnit{readings: readings})
		} else {
			units = append(units, charUnit{literal: string(r)})
		}
	}
	return resolution{chars: units}
}
