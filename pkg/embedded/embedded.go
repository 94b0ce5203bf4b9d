// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 未调用 Init() 时（例如单元测试），所有读取直接回退到磁盘文件系统。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// Reset 恢复到未初始化状态（仅供测试使用）
func Reset() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// pick 根据路径前缀选择正确的文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func pick(path string) (fs.FS, error) {
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	if !initialized {
		return os.Open(path)
	}
	path = normalize(path)
	fsys, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(path)
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return os.ReadFile(path)
	}
	path = normalize(path)
	fsys, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, path)
}

// Glob 匹配资源文件
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return filepath.Glob(pattern)
	}
	pattern = normalize(pattern)
	fsys, err := pick(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, pattern)
}

// FS 返回一个以项目根目录为基准、可同时访问 assets/ 与 data/ 的文件系统
// 供只接受 fs.FS 的组件（如 ResourceManager）使用
func FS() fs.FS {
	if !initialized {
		return os.DirFS(".")
	}
	return rootFS{}
}

// rootFS 把 Open 调用按前缀路由到 assetsFS / dataFS
type rootFS struct{}

func (rootFS) Open(name string) (fs.File, error) {
	fsys, err := pick(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return fsys.Open(name)
}
