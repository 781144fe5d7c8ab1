package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ked/encoding"
)

func TestRunCommandUnknown(t *testing.T) {
	e := New()
	err := e.RunCommand([]string{"frobnicate"})
	if err == nil {
		t.Fatal("unknown command returned nil error")
	}
	if got, want := err.Error(), "command 'frobnicate' doesn't exist"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestRunCommandEmpty(t *testing.T) {
	e := New()
	if err := e.RunCommandLine(""); err != ErrNoCommand {
		t.Errorf("empty command line error = %v, want %v", err, ErrNoCommand)
	}
}

func TestRunCommandQuitAliases(t *testing.T) {
	for _, name := range []string{"quit", "q"} {
		e := New()
		if err := e.RunCommand([]string{name}); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !e.WantQuit() {
			t.Errorf("WantQuit after %q = false, want true", name)
		}
	}
}

func TestWriteScratchBuffer(t *testing.T) {
	e := New()
	err := e.RunCommand([]string{"write"})
	if err == nil {
		t.Fatal("write on scratch buffer returned nil error")
	}
	if got, want := err.Error(), "cannot save a scratch buffer"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestOpenNonexistent(t *testing.T) {
	e := New()
	err := e.RunCommand([]string{"open", filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Fatal("open on nonexistent path returned nil error")
	}
	if !os.IsNotExist(err) {
		t.Errorf("error = %v, want a not-exist I/O error", err)
	}
	if len(e.Tabs) != 1 || e.Buffers.Len() != 1 {
		t.Errorf("tabs = %d buffers = %d after failed open, want 1 and 1", len(e.Tabs), e.Buffers.Len())
	}
}

func TestOpenMissingArgument(t *testing.T) {
	e := New()
	if err := e.RunCommand([]string{"open"}); err == nil {
		t.Error("open without a path returned nil error")
	}
}

func TestOpenAndWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New()
	if err := e.RunCommand([]string{"e", path}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(e.Tabs) != 2 || e.Focused != 1 {
		t.Fatalf("tabs = %d focused = %d, want 2 and 1", len(e.Tabs), e.Focused)
	}
	win := e.FocusedWindow()
	buf := e.WindowBuffer(win)
	if got, want := buf.Content.String(), "hello\nworld\n"; got != want {
		t.Fatalf("buffer content = %q, want %q", got, want)
	}
	if !strings.HasSuffix(buf.Name, "note.txt") {
		t.Errorf("buffer name = %q, want it to name the file", buf.Name)
	}

	buf.InsertTextAt(pos(1, 1), "say ")
	if err := e.RunCommand([]string{"w"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "say hello\nworld\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestOpenUTF16RoundTrip(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}
	path := filepath.Join(t.TempDir(), "wide.txt")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := LoadFileBuffer(path)
	if err != nil {
		t.Fatalf("LoadFileBuffer: %v", err)
	}
	if got, want := buf.Content.String(), "hi\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if buf.Charset == nil || buf.Charset.Name != "UTF-16 LE" {
		t.Fatalf("charset = %v, want UTF-16 LE", buf.Charset)
	}

	if err := buf.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, raw) {
		t.Errorf("saved bytes = %v, want the original UTF-16 form %v", data, raw)
	}
}

func TestSavePreservesCharset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin.txt")
	buf := NewFileBuffer(path, "latin.txt", "café\n")
	buf.Charset = encoding.Lookup("latin1")

	if err := buf.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'c', 'a', 'f', 0xE9, '\n'}
	if !bytes.Equal(data, want) {
		t.Errorf("saved bytes = %v, want Latin-1 form %v", data, want)
	}
}
