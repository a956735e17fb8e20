package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			want: DefaultConfig(),
		},
		{
			name: "full",
			yaml: `title: Demo
size:
  width: 800
  height: 600
position:
  x: -10
  y: 20
decorated: true
resizable: false
`,
			want: Config{
				Title:     "Demo",
				Size:      &Size{Width: 800, Height: 600},
				Position:  &Point{X: -10, Y: 20},
				Decorated: true,
			},
		},
		{
			name: "undecorated is never resizable",
			yaml: "decorated: false\n",
			want: Config{},
		},
		{
			name: "empty size means default",
			yaml: "title: x\nsize: {}\n",
			want: Config{Title: "x", Decorated: true, Resizable: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseConfig failed: %v", err)
			}
			if got.Title != tt.want.Title || got.Decorated != tt.want.Decorated || got.Resizable != tt.want.Resizable {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.ClientSize() != tt.want.ClientSize() {
				t.Errorf("client size = %+v, want %+v", got.ClientSize(), tt.want.ClientSize())
			}
			if (got.Position == nil) != (tt.want.Position == nil) ||
				(got.Position != nil && *got.Position != *tt.want.Position) {
				t.Errorf("position = %v, want %v", got.Position, tt.want.Position)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"nul title", "title: \"a\\0b\"\n", ErrTitleEncoding},
		{"negative size", "size: {width: -1, height: 10}\n", nil},
		{"huge size", "size: {width: 1e10, height: 10}\n", nil},
		{"size at int32 limit", "size: {width: 2147483648, height: 10}\n", nil},
		{"nan size", "size: {width: .nan, height: 10}\n", nil},
		{"position too far right", "position: {x: 3e9, y: 0}\n", nil},
		{"position too far up", "position: {x: 0, y: -1e10}\n", nil},
		{"infinite position", "position: {x: .inf, y: 0}\n", nil},
		{"not yaml", "title: [unterminated\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	if err := os.WriteFile(path, []byte("title: From file\nsize: {width: 320, height: 240}\n"), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Title != "From file" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.ClientSize() != (Size{Width: 320, Height: 240}) {
		t.Errorf("size = %+v", cfg.ClientSize())
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = "Round trip"
	cfg.Size = &Size{Width: 1024, Height: 768}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig(%s): %v", data, err)
	}
	if back.Title != cfg.Title || back.ClientSize() != cfg.ClientSize() || !back.Resizable {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}
