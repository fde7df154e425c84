package patterns

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseList(t *testing.T) {
	list, err := ParseList(KindGlob, strings.NewReader("/etc/*\n/home/**\n"), "blacklist")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "/etc/*", list[0].Pattern())
	assert.Equal(t, "blacklist:1", list[0].Origin())
	assert.Equal(t, "/home/**", list[1].Pattern())
	assert.Equal(t, "blacklist:2", list[1].Origin())
}

func TestParseList_KeepsLinesVerbatim(t *testing.T) {
	input := "/a \n\n# comment\r\n  /b\n/c"
	list, err := ParseList(KindString, strings.NewReader(input), "l")
	require.NoError(t, err)

	var got []string
	for _, m := range list {
		got = append(got, m.Pattern())
	}
	assert.Equal(t, []string{"/a ", "", "# comment", "  /b", "/c"}, got)
}

func TestParseList_Empty(t *testing.T) {
	list, err := ParseList(KindRegex, strings.NewReader(""), "l")
	require.NoError(t, err)
	assert.Empty(t, list)

	m, err := list.Match("/anything")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestParseList_InvalidPatternNamesLine(t *testing.T) {
	_, err := ParseList(KindRegex, strings.NewReader("/ok\n/bad(\n"), "whitelist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
	assert.Contains(t, err.Error(), "whitelist:2")
}

func TestParseList_UnknownKind(t *testing.T) {
	_, err := ParseList(Kind(7), strings.NewReader("/x\n"), "l")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestLoadList(t *testing.T) {
	path := writeList(t, "/etc/passwd\n/etc/shadow\n")

	list, err := LoadList(KindString, path)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, path+":2", list[1].Origin())
}

func TestLoadList_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "protected"), []byte("/srv\n"), 0o600))

	list, err := LoadList(KindString, "~/protected")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLoadList_Missing(t *testing.T) {
	_, err := LoadList(KindGlob, filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestList_Match(t *testing.T) {
	list, err := ParseList(KindGlob, strings.NewReader("\n/etc/*\n/tmp/**\n"), "l")
	require.NoError(t, err)

	tests := []struct {
		candidate string
		origin    string
	}{
		{"/etc/passwd", "l:2"},
		{"/tmp/a/b", "l:3"},
		{"/etc/../tmp/x", "l:3"},
		{"/usr/bin", ""},
		{"/etc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			m, err := list.Match(tt.candidate)
			require.NoError(t, err)
			if tt.origin == "" {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.origin, m.Origin())
		})
	}
}

func TestList_MatchFirstWins(t *testing.T) {
	list, err := ParseList(KindRegex, strings.NewReader("/etc/.*\n/etc/passwd\n"), "l")
	require.NoError(t, err)

	m, err := list.Match("/etc/passwd")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "/etc/.*", m.Pattern())
}
