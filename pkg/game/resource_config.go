package game

// ResourceConfig 资源清单，对应 data/resources.yaml
//
// 结构:
//
//	version: "1.0"
//	base_path: assets/images
//	groups:
//	  maps:
//	    images:
//	      - id: IMAGE_MAP_MINION_VALLEY
//	        path: maps/minion_valley.png
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 可一起预加载的一组资源
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource 单个图片资源定义
type ImageResource struct {
	ID   string `yaml:"id"`   // 资源 ID（唯一）
	Path string `yaml:"path"` // 相对 base_path 的路径
}

// buildFullPath 拼接 base_path 与资源相对路径
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
