//go:build js

package utils

// DefaultAssetRoot 浏览器端资源与页面同级
//
// 注意：wasm 运行时没有本地文件系统，os.DirFS(".") 打不开任何贴图，
// 纹理全部回退为纯色占位图。需要真实贴图时，把 resources/ 目录加入
// //go:embed 并将该 fs.FS 传给 game.NewResourceManager。
func DefaultAssetRoot() string {
	return "."
}
