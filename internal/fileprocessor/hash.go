package fileprocessor

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// calculateHash 计算文件的xxHash哈希值
func (p *Processor) calculateHash(filePath string) (string, error) {
	file, err := p.Fs.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("计算哈希失败: %w", err)
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}

// verifyCopy 比较源文件与副本的哈希
func (p *Processor) verifyCopy(src, dst string) error {
	srcHash, err := p.calculateHash(src)
	if err != nil {
		return err
	}
	dstHash, err := p.calculateHash(dst)
	if err != nil {
		return err
	}
	if srcHash != dstHash {
		return fmt.Errorf("%w: %s (%s != %s)", ErrVerifyMismatch, dst, srcHash, dstHash)
	}
	return nil
}
