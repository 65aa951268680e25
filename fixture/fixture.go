// Package fixture 生成用于 RFP 解析器测试的样例 PDF：
// 固定的元素序列经布局计算后交给渲染器，一次性写入目标文件。
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anglerfp/rfpgen/layout"
	"github.com/anglerfp/rfpgen/renderer"
)

// Builder 串联内容、布局与渲染，把样例 RFP 写成 PDF 文件。
type Builder struct {
	renderer renderer.Renderer
}

// NewBuilder 创建 Builder。renderer 为 nil 时 Build 会以
// renderer.ErrUnavailable 失败。
func NewBuilder(r renderer.Renderer) *Builder {
	return &Builder{renderer: r}
}

// Build 生成样例 RFP 并写入 outputPath，已存在的文件会被覆盖。
// 渲染完全在内存中完成后才写盘，失败路径不会留下残缺文件。
func (b *Builder) Build(outputPath string) error {
	if b.renderer == nil {
		return fmt.Errorf("缺少渲染器: %w", renderer.ErrUnavailable)
	}
	ts, ok := b.renderer.(layout.Typesetter)
	if !ok {
		return fmt.Errorf("渲染器未实现排版接口: %w", renderer.ErrUnavailable)
	}

	result, err := layout.Build(Content(), layout.BuildOptions{Typesetter: ts})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	pdfBytes, err := b.renderer.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}
