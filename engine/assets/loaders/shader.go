package loaders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/pong/engine/core"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// ShaderBinary is a compiled SPIR-V module ready for vkCreateShaderModule.
type ShaderBinary struct {
	Name     string
	FullPath string
	Code     []uint32
}

func (s *ShaderBinary) Size() uint64 {
	return uint64(len(s.Code) * 4)
}

type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string) (*ShaderBinary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	code, err := bytesToBytecode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &ShaderBinary{
		Name:     filepath.Base(path),
		FullPath: path,
		Code:     code,
	}, nil
}

func bytesToBytecode(b []byte) ([]uint32, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a non-zero multiple of 4", core.ErrInvalidShader, len(b))
	}
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}
	if byteCode[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%08x", core.ErrInvalidShader, byteCode[0])
	}
	return byteCode, nil
}
