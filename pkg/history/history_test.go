package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_LoadMissing(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "history.txt"), 0)
	err := s.Load()
	if !os.IsNotExist(err) {
		t.Fatalf("Load() error = %v, want not-exist", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.txt")

	s := New(path, 0)
	s.Add("p 5 7")
	s.Add("")
	s.Add("n")
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got, want := string(data), "p 5 7\nn\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	loaded := New(path, 0)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := loaded.Lines(), []string{"p 5 7", "n"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestStore_Limit(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "h"), 2)
	for _, line := range []string{"a", "b", "c"} {
		s.Add(line)
	}
	if got, want := s.Lines(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestStore_LoadAppliesLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h")
	if err := os.WriteFile(path, []byte("a\nb\n\nc\n"), 0600); err != nil {
		t.Fatal(err)
	}
	s := New(path, 2)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := s.Lines(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestStore_LinesIsCopy(t *testing.T) {
	s := New("h", 0)
	s.Add("a")
	lines := s.Lines()
	lines[0] = "changed"
	if s.Lines()[0] != "a" {
		t.Error("Lines() must return a copy")
	}
}
