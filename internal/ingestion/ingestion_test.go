package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf to space", "line one\r\nline two", "line one line two"},
		{"whitespace runs collapse", "a   b\t\tc", "a b c"},
		{"non printable become spaces", "résumé text", "r sum  text"},
		{"preserves email and phone", "jane@example.com / 555-0100", "jane@example.com / 555-0100"},
		{"trims ends", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestExtractTextFromBytes_PlainText(t *testing.T) {
	text := ExtractTextFromBytes([]byte("hello resume"), ".txt")
	assert.Equal(t, "hello resume", text)

	// Case-insensitive extension
	text = ExtractTextFromBytes([]byte("hello"), ".TXT")
	assert.Equal(t, "hello", text)
}

func TestExtractTextFromBytes_HTML(t *testing.T) {
	html := `<html><head><style>body{}</style></head><body><h1>Jane Doe</h1><p>Python developer</p><script>alert(1)</script></body></html>`
	text := ExtractTextFromBytes([]byte(html), ".html")
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python developer")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "body{}")
}

func TestExtractTextFromBytes_Degradation(t *testing.T) {
	// Unsupported extension
	assert.Empty(t, ExtractTextFromBytes([]byte("data"), ".png"))
	// Corrupt PDF degrades to empty rather than failing
	assert.Empty(t, ExtractTextFromBytes([]byte("not a pdf"), ".pdf"))
	// Corrupt DOCX likewise
	assert.Empty(t, ExtractTextFromBytes([]byte("not a docx"), ".docx"))
}

func TestExtractText_MissingFile(t *testing.T) {
	assert.Empty(t, ExtractText(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestLoadResumes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("python developer\nwith sql"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("java engineer"), 0644))
	// Unsupported and empty files are skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"), []byte{0x89, 0x50}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0644))

	resumes, err := LoadResumes(dir, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, resumes, 2)

	names := []string{resumes[0].Name, resumes[1].Name}
	assert.Contains(t, names, "a.txt")
	assert.Contains(t, names, "b.txt")

	for _, r := range resumes {
		if r.Name == "a.txt" {
			assert.Equal(t, "python developer with sql", r.Text)
		}
	}
}

func TestLoadResumes_MissingDirectory(t *testing.T) {
	_, err := LoadResumes(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}
