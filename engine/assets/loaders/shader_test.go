package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/pong/engine/core"
)

func TestBytesToBytecode(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []uint32
		wantErr bool
	}{
		{name: "magic and one word", in: []byte{0x03, 0x02, 0x23, 0x07, 0x01, 0x00, 0x01, 0x00}, want: []uint32{SPIRVMagic, 0x00010001}},
		{name: "empty", in: nil, wantErr: true},
		{name: "ragged", in: []byte{0x03, 0x02, 0x23, 0x07, 0x01}, wantErr: true},
		{name: "bad magic", in: []byte{0x07, 0x23, 0x02, 0x03}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bytesToBytecode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidShader) {
					t.Fatalf("bytesToBytecode() error = %v, want ErrInvalidShader", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("bytesToBytecode() = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d words, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("word %d = 0x%08x, want 0x%08x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestShaderLoaderLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vert.spv")
	if err := os.WriteFile(path, []byte{0x03, 0x02, 0x23, 0x07, 0, 0, 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	sl := &ShaderLoader{}
	bin, err := sl.Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if bin.Name != "vert.spv" || bin.Size() != 8 {
		t.Fatalf("Load() = %+v", bin)
	}
	if _, err := sl.Load(filepath.Join(t.TempDir(), "missing.spv")); err == nil {
		t.Fatalf("Load() of a missing file succeeded")
	}
}
