//go:build !js

package utils

import "os"

// DefaultAssetRoot 返回包含 resources/ 目录的默认根目录
// 桌面端从构建目录运行，资源在上一级目录
// 可以通过环境变量 BLOCKDEFENSE_ASSETS 覆盖
func DefaultAssetRoot() string {
	if root := os.Getenv("BLOCKDEFENSE_ASSETS"); root != "" {
		return root
	}
	return ".."
}
