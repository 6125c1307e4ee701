package processor

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yleoer/hanzi/pkg/config"
	"github.com/yleoer/hanzi/pkg/converter"
	"github.com/yleoer/hanzi/pkg/data"
	"github.com/yleoer/hanzi/pkg/hanzi"
)

func newTestProcessor(t *testing.T, cfg *config.Config) *OutputProcessor {
	t.Helper()
	tables, err := data.Embedded()
	require.NoError(t, err)
	logger := log.New(io.Discard, "", 0)
	return NewOutputProcessor(hanzi.New(tables), converter.NewNoopConverter(), cfg, logger)
}

func TestProcessDocument(t *testing.T) {
	cfg := &config.Config{
		OutputDir: t.TempDir(),
		Delimiter: " ",
		Formats:   []string{"pinyin", "pinyin-numbered", "zhuyin", "ipa"},
	}
	p := newTestProcessor(t, cfg)

	require.NoError(t, p.ProcessDocument("/watch/问候.txt", "你好"))

	tests := []struct {
		file string
		want string
	}{
		{"问候.pinyin.txt", "nǐ hǎo"},
		{"问候.pinyin-numbered.txt", "ni3 hao3"},
		{"问候.zhuyin.txt", "ㄋㄧˇ ㄏㄠˇ"},
		{"问候.ipa.txt", "ni˨˩˦ xɑʊ˨˩˦"},
	}
	for _, tt := range tests {
		content, err := os.ReadFile(filepath.Join(cfg.OutputDir, tt.file))
		require.NoError(t, err, tt.file)
		assert.Equal(t, tt.want, string(content), tt.file)
	}
}

func TestProcessDocumentAllReadings(t *testing.T) {
	cfg := &config.Config{
		OutputDir:   t.TempDir(),
		Delimiter:   " ",
		AllReadings: true,
		Formats:     []string{"pinyin"},
	}
	p := newTestProcessor(t, cfg)

	require.NoError(t, p.ProcessDocument("/watch/多音.txt", "行"))

	content, err := os.ReadFile(filepath.Join(cfg.OutputDir, "多音.pinyin.txt"))
	require.NoError(t, err)
	assert.Equal(t, "[xíng/háng]", string(content))
}

func TestProcessDocumentUnknownFormat(t *testing.T) {
	cfg := &config.Config{
		OutputDir: t.TempDir(),
		Delimiter: " ",
		Formats:   []string{"braille"},
	}
	p := newTestProcessor(t, cfg)

	assert.Error(t, p.ProcessDocument("/watch/x.txt", "你好"))
}
