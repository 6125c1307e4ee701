// Package data 负责加载并持有转写所需的静态数据表：
// 词语/单字的拼音读音表，以及繁体/简体字符集。
// 所有表在进程启动时加载一次，之后只读。
package data

import (
	"bufio"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yleoer/hanzi/pkg/util"
)

// 数据文件名，外部数据目录中必须使用相同的文件名才能覆盖内置数据。
const (
	WordsFileName      = "hanzi_pinyin_words.tsv"
	CharactersFileName = "hanzi_pinyin_characters.tsv"
	CharSetFileName    = "hanzi_characters.tsv"
)

//go:embed hanzi_pinyin_words.tsv hanzi_pinyin_characters.tsv hanzi_characters.tsv
var embeddedFS embed.FS

// Tables 持有全部静态数据表。加载完成后不可再修改。
type Tables struct {
	// Words 词语读音表：词条 -> 读音列表（第一个为最常用读音，顺序与数据文件一致）。
	Words map[string][]string
	// Characters 单字读音表，约定同上。
	Characters map[string][]string
	// Traditional / Simplified 分别为繁体、简体字符集；Shared 为两者交集。
	Traditional map[rune]struct{}
	Simplified  map[rune]struct{}
	Shared      map[rune]struct{}
}

// IsHanzi 判断一个字符是否属于已知的汉字字符集（繁体或简体）。
func (t *Tables) IsHanzi(r rune) bool {
	if _, ok := t.Traditional[r]; ok {
		return true
	}
	_, ok := t.Simplified[r]
	return ok
}

// Load 从指定目录加载三个数据文件。任何文件缺失或格式错误都返回错误，
// 调用方应视为致命错误：用不完整的数据表做转写比直接失败更糟。
func Load(dir string) (*Tables, error) {
	read := func(name string) (string, error) {
		content, err := util.ReadTextFileContent(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("failed to read data file %s: %w", name, err)
		}
		return content, nil
	}
	words, err := read(WordsFileName)
	if err != nil {
		return nil, err
	}
	characters, err := read(CharactersFileName)
	if err != nil {
		return nil, err
	}
	charSets, err := read(CharSetFileName)
	if err != nil {
		return nil, err
	}
	return Parse(words, characters, charSets)
}

// LoadOrEmbedded 优先从 dir 加载数据表；dir 为空或不存在时回退到内置数据。
func LoadOrEmbedded(dir string) (*Tables, error) {
	if dir == "" || !util.IsDirectory(dir) {
		return Embedded()
	}
	if _, err := os.Stat(filepath.Join(dir, WordsFileName)); err != nil {
		return Embedded()
	}
	return Load(dir)
}

// Embedded 加载编译进二进制的默认数据表（CC-CEDICT 子集）。
func Embedded() (*Tables, error) {
	read := func(name string) (string, error) {
		b, err := embeddedFS.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("failed to read embedded data file %s: %w", name, err)
		}
		return string(b), nil
	}
	words, err := read(WordsFileName)
	if err != nil {
		return nil, err
	}
	characters, err := read(CharactersFileName)
	if err != nil {
		return nil, err
	}
	charSets, err := read(CharSetFileName)
	if err != nil {
		return nil, err
	}
	return Parse(words, characters, charSets)
}

// MustEmbedded 同 Embedded，失败时 panic。内置数据在编译期就已固定，
// 解析失败只可能是数据文件本身被改坏。
func MustEmbedded() *Tables {
	t, err := Embedded()
	if err != nil {
		panic(err)
	}
	return t
}

// Parse 从三个数据文件的内容构建数据表。
func Parse(words, characters, charSets string) (*Tables, error) {
	t := &Tables{}
	var err error
	if t.Words, err = parseLexicon(words, WordsFileName); err != nil {
		return nil, err
	}
	if t.Characters, err = parseLexicon(characters, CharactersFileName); err != nil {
		return nil, err
	}
	if err = t.parseCharSets(charSets); err != nil {
		return nil, err
	}
	return t, nil
}

// parseLexicon 解析读音表。每行格式：
//
//	HANZI<TAB>READING[/READING...]
//
// 读音的先后顺序有意义（第一个为最常用读音），必须原样保留。
func parseLexicon(content, name string) (map[string][]string, error) {
	entries := make(map[string][]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%s line %d: expected HANZI<TAB>READINGS, got %q", name, lineNum, line)
		}
		readings := strings.Split(parts[1], "/")
		for _, r := range readings {
			if r == "" {
				return nil, fmt.Errorf("%s line %d: empty reading in %q", name, lineNum, parts[1])
			}
		}
		entries[parts[0]] = readings
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

// parseCharSets 解析字符集表。每行格式：
//
//	TRADITIONAL<TAB>SIMPLIFIED
//
// 两列相同表示该字在两个系统中通用。Shared 在加载完成后按交集计算。
func (t *Tables) parseCharSets(content string) error {
	t.Traditional = make(map[rune]struct{})
	t.Simplified = make(map[rune]struct{})
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%s line %d: expected TRADITIONAL<TAB>SIMPLIFIED, got %q", CharSetFileName, lineNum, line)
		}
		trad := []rune(parts[0])
		simp := []rune(parts[1])
		if len(trad) != 1 || len(simp) != 1 {
			return fmt.Errorf("%s line %d: each column must be a single character, got %q", CharSetFileName, lineNum, line)
		}
		t.Traditional[trad[0]] = struct{}{}
		t.Simplified[simp[0]] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", CharSetFileName, err)
	}
	t.Shared = make(map[rune]struct{})
	for r := range t.Traditional {
		if _, ok := t.Simplified[r]; ok {
			t.Shared[r] = struct{}{}
		}
	}
	return nil
}
