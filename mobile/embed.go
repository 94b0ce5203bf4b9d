//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 只能引用包目录内的文件，构建前需要把项目根目录的
// assets/ 和 data/ 复制到 mobile/（make prepare-mobile 完成这一步）：
//
//	cp -r assets data mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/resources.yaml data/towers.yaml data/enemies.yaml data/waves.yaml data/maps
var dataFS embed.FS
