// Package transcriptions 提供拼音的声调标注形式转换，以及
// 带数字声调拼音到注音符号（Bopomofo）和国际音标（IPA）的转换。
//
// 包里的函数都是纯字符串转换：输入中无法识别为拼音音节的部分
// 原样保留，不报错。一个连续的字母串只有在能完整切分为合法
// 音节时才会被转换，避免把夹杂在文本里的英文单词改坏。
package transcriptions

import "strings"

// 声母 -> 注音符号。
var zhuyinInitials = map[string]string{
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ", "r": "ㄖ",
	"z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

// 韵母 -> 注音符号。"-i" 舌尖元音在注音里不写出来（ㄓ即 zhi）。
var zhuyinFinals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ê": "ㄝ",
	"ai": "ㄞ", "ei": "ㄟ", "ao": "ㄠ", "ou": "ㄡ",
	"an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ", "er": "ㄦ",
	"i": "ㄧ", "ia": "ㄧㄚ", "ie": "ㄧㄝ", "iao": "ㄧㄠ", "iu": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ", "ong": "ㄨㄥ",
	"ü": "ㄩ", "üe": "ㄩㄝ", "üan": "ㄩㄢ", "ün": "ㄩㄣ",
	"-i": "",
}

// 注音声调：一声不标，轻声的点写在音节前面。
var zhuyinTones = [6]string{"", "", "ˊ", "ˇ", "ˋ", "˙"}

// 声母 -> IPA。
var ipaInitials = map[string]string{
	"b": "p", "p": "pʰ", "m": "m", "f": "f",
	"d": "t", "t": "tʰ", "n": "n", "l": "l",
	"g": "k", "k": "kʰ", "h": "x",
	"j": "tɕ", "q": "tɕʰ", "x": "ɕ",
	"zh": "ʈʂ", "ch": "ʈʂʰ", "sh": "ʂ", "r": "ʐ",
	"z": "ts", "c": "tsʰ", "s": "s",
}

// 韵母 -> IPA。
var ipaFinals = map[string]string{
	"a": "a", "o": "ɔ", "e": "ɤ", "ê": "ɛ",
	"ai": "aɪ", "ei": "eɪ", "ao": "ɑʊ", "ou": "oʊ",
	"an": "an", "en": "ən", "ang": "ɑŋ", "eng": "ɤŋ", "er": "ɑɻ",
	"i": "i", "ia": "ja", "ie": "jɛ", "iao": "jɑʊ", "iu": "joʊ",
	"ian": "jɛn", "in": "in", "iang": "jɑŋ", "ing": "iŋ", "iong": "jʊŋ",
	"u": "u", "ua": "wa", "uo": "wɔ", "uai": "waɪ", "ui": "weɪ",
	"uan": "wan", "un": "wən", "uang": "wɑŋ", "ueng": "wɤŋ", "ong": "ʊŋ",
	"ü": "y", "üe": "ɥɛ", "üan": "ɥɛn", "ün": "yn",
}

// IPA 五度标调，轻声不标。
var ipaTones = [6]string{"", "˥", "˧˥", "˨˩˦", "˥˩", ""}

// AccentedToNumbered 把带声调符号的拼音转换为数字声调形式。
// 没有声调符号但能切分为合法音节的字母串按轻声（5）处理，
// 完全不能切分的字母串（普通外文单词）原样保留。
func AccentedToNumbered(text string) string {
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isPinyinLetter(runes[i]) {
			out.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isPinyinLetter(runes[j]) {
			j++
		}
		out.WriteString(numberRun(runes[i:j]))
		i = j
	}
	return out.String()
}

// numberRun 转换一段连续的拼音字母。
func numberRun(run []rune) string {
	base := make([]rune, len(run))
	tones := make([]int, len(run))
	for i, r := range run {
		if av, ok := accentedVowels[r]; ok {
			base[i] = av.Base
			tones[i] = av.Tone
		} else {
			base[i] = r
		}
	}
	bounds, ok := segment([]rune(strings.ToLower(string(base))), 0)
	if !ok {
		return string(run)
	}
	var out strings.Builder
	start := 0
	for _, end := range bounds {
		tone := 5
		for i := start; i < end; i++ {
			if tones[i] != 0 {
				tone = tones[i]
				break
			}
		}
		out.WriteString(string(base[start:end]))
		out.WriteByte(byte('0' + tone))
		start = end
	}
	return out.String()
}

// NumberedToAccented 把数字声调拼音还原为声调符号形式，
// 是 AccentedToNumbered 的逆操作。声调符号落在韵腹上：
// 有 a 标 a，有 e 标 e，"ou" 标 o，否则标最后一个元音。
func NumberedToAccented(text string) string {
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isPinyinLetter(runes[i]) {
			out.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isPinyinLetter(runes[j]) {
			j++
		}
		if j < len(runes) && runes[j] >= '1' && runes[j] <= '5' && isSyllable(string(runes[i:j])) {
			out.WriteString(accentSyllable(runes[i:j], int(runes[j]-'0')))
			j++
		} else {
			out.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return out.String()
}

// accentSyllable 给单个音节标调。
func accentSyllable(syllable []rune, tone int) string {
	if tone == 5 {
		return string(syllable)
	}
	pos := -1
	last := -1
	for i, r := range syllable {
		lower := r
		if r >= 'A' && r <= 'Z' {
			lower = r - 'A' + 'a'
		}
		if r == 'Ü' {
			lower = 'ü'
		}
		switch lower {
		case 'a', 'e':
			pos = i
		case 'o':
			if pos < 0 {
				pos = i
			}
			last = i
		case 'i', 'u', 'ü':
			last = i
		}
		if pos >= 0 && (lower == 'a' || lower == 'e') {
			break
		}
	}
	if pos < 0 {
		pos = last
	}
	if pos < 0 {
		return string(syllable)
	}
	marked, ok := toneMarks[syllable[pos]]
	if !ok {
		return string(syllable)
	}
	out := make([]rune, len(syllable))
	copy(out, syllable)
	out[pos] = marked[tone]
	return string(out)
}

// PinyinToZhuyin 把数字声调拼音转换为注音符号。
func PinyinToZhuyin(numbered string) string {
	return convertNumbered(numbered, func(initial, final string, tone int) string {
		s := zhuyinInitials[initial] + zhuyinFinals[final]
		if tone == 5 {
			return zhuyinTones[5] + s
		}
		return s + zhuyinTones[tone]
	})
}

// PinyinToIPA 把数字声调拼音转换为国际音标。
func PinyinToIPA(numbered string) string {
	return convertNumbered(numbered, func(initial, final string, tone int) string {
		f := ipaFinals[final]
		if final == "-i" {
			// 舌尖元音：卷舌声母后是 ɻ̩，平舌声母后是 ɹ̩
			switch initial {
			case "zh", "ch", "sh", "r":
				f = "ɻ̩"
			default:
				f = "ɹ̩"
			}
		}
		return ipaInitials[initial] + f + ipaTones[tone]
	})
}

// numberedToken 是一个待转换的音节：字母串加可选的声调数字。
type numberedToken struct {
	letters string
	tone    int // 0 表示没有声调数字
}

// convertNumbered 驱动注音/IPA 转换。以连续的字母和数字为一个"词"，
// 词内每个音节必须带声调数字且合法，整个词才会被转换；
// 否则整个词原样输出。其他字符一律原样复制。
func convertNumbered(text string, conv func(initial, final string, tone int) string) string {
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isPinyinLetter(runes[i]) && !(runes[i] >= '0' && runes[i] <= '9') {
			out.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		var tokens []numberedToken
		valid := true
		for j < len(runes) && (isPinyinLetter(runes[j]) || (runes[j] >= '0' && runes[j] <= '9')) {
			k := j
			for k < len(runes) && isPinyinLetter(runes[k]) {
				k++
			}
			if k == j {
				// 数字打头，不是音节
				valid = false
				k++
			} else if k < len(runes) && runes[k] >= '1' && runes[k] <= '5' {
				tokens = append(tokens, numberedToken{letters: string(runes[j:k]), tone: int(runes[k] - '0')})
				k++
			} else {
				tokens = append(tokens, numberedToken{letters: string(runes[j:k])})
			}
			j = k
		}
		if valid {
			for _, tok := range tokens {
				if tok.tone == 0 || !isSyllable(tok.letters) {
					valid = false
					break
				}
			}
		}
		if !valid {
			out.WriteString(string(runes[i:j]))
		} else {
			for _, tok := range tokens {
				initial, final, _ := decompose(tok.letters)
				out.WriteString(conv(initial, final, tok.tone))
			}
		}
		i = j
	}
	return out.String()
}
