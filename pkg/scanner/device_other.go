//go:build !unix

package scanner

import "os"

// 该平台不提供设备号，不做文件系统限制
func deviceID(os.FileInfo) (uint64, bool) {
	return 0, false
}
