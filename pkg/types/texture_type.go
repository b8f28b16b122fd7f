package types

// TextureID 标识渲染层使用的纹理
// 具体文件路径由 data/resources.yaml 配置
type TextureID int

const (
	TextureFolderBack  TextureID = iota // 文件夹背层（敌人之下）
	TextureFolderFront                  // 文件夹前层（敌人之上）
	TextureBackground                   // 主背景叠加层
	TextureEnemy                        // 敌人精灵
)

// TextureIDs 按加载顺序列出所有纹理
var TextureIDs = []TextureID{
	TextureFolderBack,
	TextureFolderFront,
	TextureBackground,
	TextureEnemy,
}

var textureKeys = [...]string{
	TextureFolderBack:  "folder_back",
	TextureFolderFront: "folder_front",
	TextureBackground:  "background",
	TextureEnemy:       "enemy",
}

// Key 返回纹理在资源配置中的键名
func (t TextureID) Key() string {
	if t < 0 || int(t) >= len(textureKeys) {
		return ""
	}
	return textureKeys[t]
}

func (t TextureID) String() string {
	if k := t.Key(); k != "" {
		return k
	}
	return "unknown"
}
