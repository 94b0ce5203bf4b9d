package mobile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// embedPatterns 读取 embed.go 中 //go:embed 引用的路径
func embedPatterns(t *testing.T) []string {
	t.Helper()
	f, err := os.Open("embed.go")
	if err != nil {
		t.Fatalf("open embed.go: %v", err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "//go:embed ") {
			continue
		}
		for _, p := range strings.Fields(strings.TrimPrefix(line, "//go:embed ")) {
			patterns = append(patterns, strings.TrimPrefix(p, "all:"))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan embed.go: %v", err)
	}
	return patterns
}

// TestEmbedPatternsExistInProjectRoot prepare-mobile 从项目根目录复制资源，
// embed.go 引用的每个路径都必须在根目录存在
func TestEmbedPatternsExistInProjectRoot(t *testing.T) {
	patterns := embedPatterns(t)
	if len(patterns) == 0 {
		t.Fatal("no //go:embed patterns found")
	}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			if _, err := os.Stat(filepath.Join("..", p)); err != nil {
				t.Errorf("embedded path %s missing from project root: %v", p, err)
			}
		})
	}
}

// TestPrepareMobileCopiesEmbeddedRoots Makefile 复制的目录覆盖 embed.go 引用的顶层目录
func TestPrepareMobileCopiesEmbeddedRoots(t *testing.T) {
	data, err := os.ReadFile("../Makefile")
	if err != nil {
		t.Fatalf("read Makefile: %v", err)
	}
	var copied []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "MOBILE_RESOURCES :=") {
			copied = strings.Fields(strings.TrimPrefix(line, "MOBILE_RESOURCES :="))
		}
	}

	for _, p := range embedPatterns(t) {
		root := strings.SplitN(p, "/", 2)[0]
		found := false
		for _, c := range copied {
			if c == root {
				found = true
			}
		}
		if !found {
			t.Errorf("prepare-mobile does not copy %s (needed by %s)", root, p)
		}
	}
}
