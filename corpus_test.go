package charlm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCorpus(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{"Hello, World!", "hello, world!"},
		{"line one\nline two\n", "line oneline two"},
		{"CRLF\r\nendings\r\n", "crlfendings"},
		{"MiXeD\nCase\nLines", "mixedcaselines"},
		{"", ""},
	}
	for i, test := range tests {
		actual := NewCorpus(test.Input).String()
		if actual != test.Expected {
			t.Errorf("test %d: expected %q but got %q", i, test.Expected, actual)
		}
	}
}

func TestCorpusAlphabet(t *testing.T) {
	c := NewCorpus("abcabcabcabc")
	alphabet := c.Alphabet()
	if len(alphabet) != 3 {
		t.Fatalf("expected 3 distinct characters but got %d", len(alphabet))
	}
	seen := map[rune]bool{}
	for _, ch := range alphabet {
		seen[ch] = true
	}
	for _, ch := range "abc" {
		if !seen[ch] {
			t.Errorf("missing character %q", ch)
		}
	}
}

func TestReadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("First Line\nSecond Line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := ReadCorpus(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "first linesecond line" {
		t.Errorf("unexpected corpus: %q", c.String())
	}
	if _, err := ReadCorpus(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
