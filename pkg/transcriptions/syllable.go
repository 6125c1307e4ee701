package transcriptions

import "strings"

// 声母表，多字母声母在前保证最长匹配。
var initials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "j", "q", "x", "r", "z", "c", "s",
}

// 零声母音节的拼写形式 -> 规范韵母。
// y/w 开头的拼写和独立成音节的韵母都在这里。
var zeroInitialSyllables = map[string]string{
	"a": "a", "o": "o", "e": "e", "ê": "ê",
	"ai": "ai", "ei": "ei", "ao": "ao", "ou": "ou",
	"an": "an", "en": "en", "ang": "ang", "eng": "eng", "er": "er",
	"yi": "i", "ya": "ia", "ye": "ie", "yao": "iao", "you": "iu",
	"yan": "ian", "yin": "in", "yang": "iang", "ying": "ing", "yong": "iong",
	"yu": "ü", "yue": "üe", "yuan": "üan", "yun": "ün",
	"wu": "u", "wa": "ua", "wo": "uo", "wai": "uai", "wei": "ui",
	"wan": "uan", "wen": "un", "wang": "uang", "weng": "ueng",
}

// 规范韵母集合。"-i" 是 zhi/chi/shi/ri/zi/ci/si 中的舌尖元音。
var finals = map[string]struct{}{
	"a": {}, "o": {}, "e": {}, "ê": {},
	"ai": {}, "ei": {}, "ao": {}, "ou": {},
	"an": {}, "en": {}, "ang": {}, "eng": {}, "ong": {}, "er": {},
	"i": {}, "ia": {}, "ie": {}, "iao": {}, "iu": {},
	"ian": {}, "in": {}, "iang": {}, "ing": {}, "iong": {},
	"u": {}, "ua": {}, "uo": {}, "uai": {}, "ui": {},
	"uan": {}, "un": {}, "uang": {}, "ueng": {},
	"ü": {}, "üe": {}, "üan": {}, "ün": {},
	"-i": {},
}

// 带声调元音 -> (不带调的基础元音, 声调)。大小写都要覆盖，
// CC-CEDICT 的词条读音保留了专有名词的首字母大写。
var accentedVowels = map[rune]struct {
	Base rune
	Tone int
}{
	'ā': {'a', 1}, 'á': {'a', 2}, 'ǎ': {'a', 3}, 'à': {'a', 4},
	'ē': {'e', 1}, 'é': {'e', 2}, 'ě': {'e', 3}, 'è': {'e', 4},
	'ī': {'i', 1}, 'í': {'i', 2}, 'ǐ': {'i', 3}, 'ì': {'i', 4},
	'ō': {'o', 1}, 'ó': {'o', 2}, 'ǒ': {'o', 3}, 'ò': {'o', 4},
	'ū': {'u', 1}, 'ú': {'u', 2}, 'ǔ': {'u', 3}, 'ù': {'u', 4},
	'ǖ': {'ü', 1}, 'ǘ': {'ü', 2}, 'ǚ': {'ü', 3}, 'ǜ': {'ü', 4},
	'Ā': {'A', 1}, 'Á': {'A', 2}, 'Ǎ': {'A', 3}, 'À': {'A', 4},
	'Ē': {'E', 1}, 'É': {'E', 2}, 'Ě': {'E', 3}, 'È': {'E', 4},
	'Ī': {'I', 1}, 'Í': {'I', 2}, 'Ǐ': {'I', 3}, 'Ì': {'I', 4},
	'Ō': {'O', 1}, 'Ó': {'O', 2}, 'Ǒ': {'O', 3}, 'Ò': {'O', 4},
	'Ū': {'U', 1}, 'Ú': {'U', 2}, 'Ǔ': {'U', 3}, 'Ù': {'U', 4},
	'Ǖ': {'Ü', 1}, 'Ǘ': {'Ü', 2}, 'Ǚ': {'Ü', 3}, 'Ǜ': {'Ü', 4},
}

// 基础元音 + 声调 -> 带调元音。numbered -> accented 方向使用。
var toneMarks = map[rune][5]rune{
	'a': {'a', 'ā', 'á', 'ǎ', 'à'},
	'e': {'e', 'ē', 'é', 'ě', 'è'},
	'i': {'i', 'ī', 'í', 'ǐ', 'ì'},
	'o': {'o', 'ō', 'ó', 'ǒ', 'ò'},
	'u': {'u', 'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'A': {'A', 'Ā', 'Á', 'Ǎ', 'À'},
	'E': {'E', 'Ē', 'É', 'Ě', 'È'},
	'I': {'I', 'Ī', 'Í', 'Ǐ', 'Ì'},
	'O': {'O', 'Ō', 'Ó', 'Ǒ', 'Ò'},
	'U': {'U', 'Ū', 'Ú', 'Ǔ', 'Ù'},
	'Ü': {'Ü', 'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
}

// maxSyllableLen 最长的拼音音节拼写（如 zhuang、chuang）。
const maxSyllableLen = 6

// isPinyinLetter 判断一个字符能否出现在拼音音节里。
// 不能用 unicode.IsLetter，否则汉字本身也会被当成字母。
func isPinyinLetter(r rune) bool {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	if r == 'ü' || r == 'Ü' {
		return true
	}
	_, ok := accentedVowels[r]
	return ok
}

// decompose 把一个不带声调的音节拆成声母和韵母。
// 失败返回 ok=false，表示这不是合法的拼音音节。
// "v" 按惯例视为 "ü" 的替写。
func decompose(syllable string) (initial, final string, ok bool) {
	s := strings.ReplaceAll(strings.ToLower(syllable), "v", "ü")
	if s == "" {
		return "", "", false
	}
	if f, whole := zeroInitialSyllables[s]; whole {
		return "", f, true
	}
	for _, ini := range initials {
		if strings.HasPrefix(s, ini) {
			rest := s[len(ini):]
			if rest == "" {
				return "", "", false
			}
			// zh/ch/sh/r/z/c/s 后面的 i 是舌尖元音，不是韵母 i
			if rest == "i" {
				switch ini {
				case "zh", "ch", "sh", "r", "z", "c", "s":
					return ini, "-i", true
				}
			}
			// j/q/x 后的 u 实际是 ü
			if (ini == "j" || ini == "q" || ini == "x") && strings.HasPrefix(rest, "u") {
				rest = "ü" + rest[len("u"):]
			}
			if _, found := finals[rest]; found {
				return ini, rest, true
			}
			return "", "", false
		}
	}
	return "", "", false
}

// isSyllable 判断不带声调的字符串是否为单个合法音节。
func isSyllable(s string) bool {
	_, _, ok := decompose(s)
	return ok
}

// segment 把一串不带声调的字母完整切分为合法音节。
// 贪婪取最长音节，失败时回溯尝试更短的切分；
// 只要有一个字母无法归入音节，整个切分就宣告失败。
func segment(rs []rune, start int) ([]int, bool) {
	if start == len(rs) {
		return nil, true
	}
	maxLen := maxSyllableLen
	if rem := len(rs) - start; rem < maxLen {
		maxLen = rem
	}
	for l := maxLen; l >= 1; l-- {
		if !isSyllable(string(rs[start : start+l])) {
			continue
		}
		rest, ok := segment(rs, start+l)
		if ok {
			return append([]int{start + l}, rest...), true
		}
	}
	return nil, false
}
