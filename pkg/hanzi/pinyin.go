package hanzi

import (
	"strings"

	"github.com/yleoer/hanzi/pkg/transcriptions"
)

// readingSeparator 多个候选读音之间的分隔符。
const readingSeparator = "/"

// cjkPunctuation 中文全角标点。扫描时与分隔符一样作为边界字符，
// 原样复制到输出，不参与读音解析。
const cjkPunctuation = "！？｡。＂＃＄％＆＇（）＊＋，－／：；＜＝＞＠［＼］＾＿｀｛｜｝～｟｠｢｣､、〃《》「」『』【】〔〕〖〗〘〙〚〛〜〝〞〟〰〾〿–—‘’‛“”„‟…‧﹏·"

// pinyinVowels 拼音元音（含声调形式和大写形式）。
const pinyinVowels = "aeiouü" +
	"āáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜ" +
	"AEIOUÜ" +
	"ĀÁǍÀĒÉĚÈĪÍǏÌŌÓǑÒŪÚǓÙǕǗǙǛ"

// pinyinLowercase 拼音小写字母（含声调元音）。
const pinyinLowercase = "abcdefghijklmnopqrstuvwxyzü" +
	"āáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜ"

func isPinyinVowel(r rune) bool {
	return strings.ContainsRune(pinyinVowels, r)
}

func isPinyinLowercase(r rune) bool {
	return strings.ContainsRune(pinyinLowercase, r)
}

// ToPinyin 把字符串中的汉字转写为拼音，其余字符原样保留。
//
// delimiter 是调用方用来标记词边界的分隔符：被分隔符（和标点）
// 隔开的每个连续片段先整体查词表，再逐字回退，所以正确分词的
// 输入能得到更准确的读音。allReadings 为 true 时输出全部候选
// 读音（形如 [dōng xi/dōng xī]），否则只取最常用的一个。
// accented 为 false 时输出数字声调形式。
func (t *Transliterator) ToPinyin(s, delimiter string, allReadings, accented bool) string {
	isBoundary := func(r rune) bool {
		return strings.ContainsRune(delimiter, r) || strings.ContainsRune(cjkPunctuation, r)
	}

	var out strings.Builder
	var lastRune rune // 已输出内容的最后一个字符，0 表示还没有输出
	emit := func(str string) {
		out.WriteString(str)
		for _, r := range str {
			lastRune = r
		}
	}

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		// 片段前的分隔符和标点原样复制，不做任何解释
		for i < len(runes) && isBoundary(runes[i]) {
			emit(string(runes[i]))
			i++
		}
		j := i
		for j < len(runes) && !isBoundary(runes[j]) {
			j++
		}
		if j == i {
			break
		}

		res := t.resolve(string(runes[i:j]))
		switch {
		case res.word != nil:
			// 词表命中：词级读音优先于逐字拼接
			if allReadings {
				emit("[" + strings.Join(res.word, readingSeparator) + "]")
			} else {
				emit(res.word[0])
			}
		default:
			for _, u := range res.chars {
				switch {
				case u.readings == nil:
					// 字典里没有的字原样传递
					emit(u.literal)
				case allReadings:
					emit("[" + strings.Join(u.readings, readingSeparator) + "]")
				default:
					reading := u.readings[0]
					// 相邻单字读音直接拼接可能产生歧义（xi+an 与 xian），
					// 前一个字符是小写字母且下一个读音以元音开头时补一个隔音符
					first, _ := firstRuneOf(reading)
					if lastRune != 0 && isPinyinVowel(first) && isPinyinLowercase(lastRune) {
						emit("'")
					}
					emit(reading)
				}
			}
		}
		i = j
	}

	pinyin := out.String()
	if accented {
		return pinyin
	}
	// 数字声调转换对完整拼好的字符串做一次，保证跨片段的读音统一处理
	return transcriptions.AccentedToNumbered(pinyin)
}

// ToZhuyin 把字符串中的汉字转写为注音符号。
// 内部固定走数字声调拼音，再交给拼音→注音转换。
func (t *Transliterator) ToZhuyin(s, delimiter string, allReadings bool) string {
	numbered := t.ToPinyin(s, delimiter, allReadings, false)
	return transcriptions.PinyinToZhuyin(numbered)
}

// ToIPA 把字符串中的汉字转写为国际音标。
func (t *Transliterator) ToIPA(s, delimiter string, allReadings bool) string {
	numbered := t.ToPinyin(s, delimiter, allReadings, false)
	return transcriptions.PinyinToIPA(numbered)
}

func firstRuneOf(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
