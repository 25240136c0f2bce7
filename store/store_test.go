package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

// storeImpls builds each Store implementation against a temp dir.
func storeImpls(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"mem":    NewMemStore(),
		"sqlite": sqliteStore,
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	for name, s := range storeImpls(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := s.Set("settings/theme", []byte("dark")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, err := s.Get("settings/theme")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(got) != "dark" {
				t.Errorf("Get() = %q, want dark", got)
			}

			// Overwrite replaces the value.
			if err := s.Set("settings/theme", []byte("light")); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			got, _ = s.Get("settings/theme")
			if string(got) != "light" {
				t.Errorf("after overwrite Get() = %q, want light", got)
			}

			if err := s.Delete("settings/theme"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := s.Get("settings/theme"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
			}

			// Deleting a missing key is a no-op.
			if err := s.Delete("settings/theme"); err != nil {
				t.Errorf("Delete() of missing key error = %v", err)
			}
		})
	}
}

func TestStore_KeysPrefix(t *testing.T) {
	for name, s := range storeImpls(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"calendar/2", "calendar/1", "settings/theme"} {
				if err := s.Set(k, []byte("x")); err != nil {
					t.Fatalf("Set(%q) error = %v", k, err)
				}
			}

			keys, err := s.Keys("calendar/")
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			want := []string{"calendar/1", "calendar/2"}
			if !reflect.DeepEqual(keys, want) {
				t.Errorf("Keys(calendar/) = %v, want %v", keys, want)
			}

			keys, err = s.Keys("")
			if err != nil {
				t.Fatalf("Keys(\"\") error = %v", err)
			}
			if len(keys) != 3 {
				t.Errorf("Keys(\"\") returned %d keys, want 3", len(keys))
			}
		})
	}
}

func TestOpenSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := s.Set("settings/company", []byte("RestoDesk")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	got, err := s.Get("settings/company")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if string(got) != "RestoDesk" {
		t.Errorf("value did not survive reopen: %q", got)
	}
}
