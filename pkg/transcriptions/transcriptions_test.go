package transcriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccentedToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple syllables", "nǐ hǎo", "ni3 hao3"},
		{"capitalized word reading", "Zhōng guó", "Zhong1 guo2"},
		{"apostrophe separates syllables", "xī'ān", "xi1'an1"},
		{"concatenated syllables", "wǒshìrén", "wo3shi4ren2"},
		{"neutral tone", "mā ma", "ma1 ma5"},
		{"u with umlaut", "lǜ", "lü4"},
		{"latin word untouched", "hello world", "hello world"},
		{"mixed text", "hello nǐ hǎo!", "hello ni3 hao3!"},
		{"bracketed alternates", "[xíng/háng]", "[xing2/hang2]"},
		{"empty", "", ""},
		{"punctuation kept", "nǐ hǎo，mā ma！", "ni3 hao3，ma1 ma5！"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccentedToNumbered(tt.input))
		})
	}
}

func TestNumberedToAccented(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple syllables", "ni3 hao3", "nǐ hǎo"},
		{"capitalized", "Zhong1 guo2", "Zhōng guó"},
		{"a takes the mark", "hao3", "hǎo"},
		{"e takes the mark", "shen2", "shén"},
		{"ou marks the o", "gou3", "gǒu"},
		{"last vowel otherwise", "liu2", "liú"},
		{"uo marks the o", "guo2", "guó"},
		{"u with umlaut", "lü4", "lǜ"},
		{"neutral tone drops digit", "ma5", "ma"},
		{"latin word untouched", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberedToAccented(tt.input))
		})
	}
}

func TestAccentedNumberedRoundTrip(t *testing.T) {
	samples := []string{"ni3 hao3", "Zhong1 guo2", "lü4", "wo3shi4ren2", "xi1'an1"}
	for _, s := range samples {
		assert.Equal(t, s, AccentedToNumbered(NumberedToAccented(s)), "sample %q", s)
	}
}

func TestPinyinToZhuyin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple syllables", "ni3 hao3", "ㄋㄧˇ ㄏㄠˇ"},
		{"first tone unmarked", "Zhong1 guo2", "ㄓㄨㄥ ㄍㄨㄛˊ"},
		{"apical vowel", "zhi4", "ㄓˋ"},
		{"neutral tone dot leads", "ma5", "˙ㄇㄚ"},
		{"u with umlaut", "lü4", "ㄌㄩˋ"},
		{"v spelling for umlaut", "lv4", "ㄌㄩˋ"},
		{"jqx u is umlaut", "ju2", "ㄐㄩˊ"},
		{"zero initial", "an1", "ㄢ"},
		{"y spelling", "ying1", "ㄧㄥ"},
		{"w spelling", "wen4", "ㄨㄣˋ"},
		{"latin word untouched", "hello", "hello"},
		{"letters without tone digit untouched", "ni hao", "ni hao"},
		{"punctuation kept", "ni3 hao3！", "ㄋㄧˇ ㄏㄠˇ！"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PinyinToZhuyin(tt.input))
		})
	}
}

func TestPinyinToIPA(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"first tone", "ma1", "ma˥"},
		{"third tones", "ni3 hao3", "ni˨˩˦ xɑʊ˨˩˦"},
		{"retroflex apical vowel", "zhi4", "ʈʂɻ̩˥˩"},
		{"dental apical vowel", "si4", "sɹ̩˥˩"},
		{"aspirated initial", "po1", "pʰɔ˥"},
		{"neutral tone unmarked", "ma5", "ma"},
		{"latin word untouched", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PinyinToIPA(tt.input))
		})
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		syllable string
		initial  string
		final    string
		ok       bool
	}{
		{"hao", "h", "ao", true},
		{"zhong", "zh", "ong", true},
		{"zhi", "zh", "-i", true},
		{"si", "s", "-i", true},
		{"ni", "n", "i", true},
		{"ju", "j", "ü", true},
		{"quan", "q", "üan", true},
		{"lv", "l", "ü", true},
		{"er", "", "er", true},
		{"ying", "", "ing", true},
		{"wen", "", "un", true},
		{"xyz", "", "", false},
		{"ngu", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		initial, final, ok := decompose(tt.syllable)
		assert.Equal(t, tt.ok, ok, "decompose(%q) ok", tt.syllable)
		assert.Equal(t, tt.initial, initial, "decompose(%q) initial", tt.syllable)
		assert.Equal(t, tt.final, final, "decompose(%q) final", tt.syllable)
	}
}

func TestSegmentBacktracking(t *testing.T) {
	// 贪婪匹配失败时必须回溯：fanguan 不能切成 fang+uan
	bounds, ok := segment([]rune("fanguan"), 0)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 7}, bounds) // fan + guan

	// xian 整体是一个音节，贪婪优先取最长
	bounds, ok = segment([]rune("xian"), 0)
	assert.True(t, ok)
	assert.Equal(t, []int{4}, bounds)

	_, ok = segment([]rune("hello"), 0)
	assert.False(t, ok)
}
