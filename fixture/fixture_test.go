package fixture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/anglerfp/rfpgen/doc"
	"github.com/anglerfp/rfpgen/layout"
	"github.com/anglerfp/rfpgen/renderer"
	canvasrenderer "github.com/anglerfp/rfpgen/renderer/canvas"
)

// expectedTexts 是样例 RFP 全部文本内容的期望阅读顺序。
var expectedTexts = []string{
	"REQUEST FOR PROPOSAL - TEST DOCUMENT",
	"CLIENT INFORMATION",
	"Client: Test Corporation Inc.",
	"Project: Website Redesign Project",
	"PROJECT DESCRIPTION",
	"We are seeking proposals for a complete website redesign including modern UI/UX design, responsive layout, and content management system integration.",
	"SCOPE OF WORK",
	"• Brand strategy and positioning",
	"• UI/UX design for 10 pages",
	"• Responsive web development",
	"• CMS integration (WordPress)",
	"• SEO optimization",
	"• Content migration from old site",
	"• Training for content editors",
	"EVALUATION CRITERIA",
	"Proposals will be evaluated based on:",
	"1. Technical approach and methodology (40%)",
	"2. Team experience and qualifications (30%)",
	"3. Cost and value proposition (20%)",
	"4. Proposed timeline and milestones (10%)",
	"IMPORTANT DATES",
	"Submission Deadline: March 15, 2026",
	"Project Start Date: April 1, 2026",
	"Expected Completion: July 31, 2026",
}

// TestContentReadingOrder 断言元素序列包含且仅包含期望文本，顺序一致。
func TestContentReadingOrder(t *testing.T) {
	var got []string
	for _, el := range Content().Elements {
		if el.Kind == doc.KindSpacer {
			continue
		}
		got = append(got, el.Text)
	}
	if len(got) != len(expectedTexts) {
		t.Fatalf("文本元素数量不符: got=%d want=%d", len(got), len(expectedTexts))
	}
	for i := range expectedTexts {
		if got[i] != expectedTexts[i] {
			t.Fatalf("第 %d 个文本顺序错误:\n got=%q\nwant=%q", i, got[i], expectedTexts[i])
		}
	}
}

// TestContentSpacerSizes 验证标题后的留白为 0.3 英寸，其余小节间为 0.2 英寸。
func TestContentSpacerSizes(t *testing.T) {
	var gaps []doc.Length
	for _, el := range Content().Elements {
		if el.Kind == doc.KindSpacer {
			gaps = append(gaps, el.Gap)
		}
	}
	if len(gaps) != 5 {
		t.Fatalf("期望 5 个 Spacer，实际 %d", len(gaps))
	}
	if gaps[0].Unit != doc.UnitIN || gaps[0].Value != 0.3 {
		t.Fatalf("标题后的留白应为 0.3in，实际 %+v", gaps[0])
	}
	for i, gap := range gaps[1:] {
		if gap.Unit != doc.UnitIN || gap.Value != 0.2 {
			t.Fatalf("第 %d 个小节留白应为 0.2in，实际 %+v", i+1, gap)
		}
	}
}

// TestLayoutKeepsReadingOrder 经过布局之后，文本块顺序仍与元素顺序一致。
func TestLayoutKeepsReadingOrder(t *testing.T) {
	r := canvasrenderer.NewRenderer()
	result, err := layout.Build(Content(), layout.BuildOptions{Typesetter: r})
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}

	var got []string
	for _, page := range result.Pages {
		for _, tb := range page.Texts {
			got = append(got, tb.Content)
		}
	}
	if len(got) != len(expectedTexts) {
		t.Fatalf("文本块数量不符: got=%d want=%d", len(got), len(expectedTexts))
	}
	for i := range expectedTexts {
		if got[i] != expectedTexts[i] {
			t.Fatalf("布局后第 %d 个文本块顺序错误:\n got=%q\nwant=%q", i, got[i], expectedTexts[i])
		}
	}
}

// TestBuildWritesValidPDF 端到端：生成文件并用 pdfcpu 校验结构有效性与页数。
func TestBuildWritesValidPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "TestData", "test-rfp.pdf")
	b := NewBuilder(canvasrenderer.NewRenderer())
	if err := b.Build(out); err != nil {
		t.Fatalf("Build 失败: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("读取输出文件失败: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("输出不是 PDF 文件")
	}

	if err := api.ValidateFile(out, nil); err != nil {
		t.Fatalf("pdfcpu 结构校验失败: %v", err)
	}
	pages, err := api.PageCountFile(out)
	if err != nil {
		t.Fatalf("pdfcpu 页数统计失败: %v", err)
	}
	if pages < 1 {
		t.Fatalf("页数应不少于 1，实际 %d", pages)
	}
}

// TestBuildOverwritesExistingFile 重复生成同一路径应覆盖旧文件而不报错。
func TestBuildOverwritesExistingFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "test-rfp.pdf")
	if err := os.WriteFile(out, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("预置旧文件失败: %v", err)
	}

	b := NewBuilder(canvasrenderer.NewRenderer())
	if err := b.Build(out); err != nil {
		t.Fatalf("第一次 Build 失败: %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("读取输出文件失败: %v", err)
	}
	if !bytes.HasPrefix(first, []byte("%PDF-")) {
		t.Fatalf("旧文件未被覆盖为 PDF")
	}

	if err := b.Build(out); err != nil {
		t.Fatalf("第二次 Build 失败: %v", err)
	}
}

// TestBuildUnwritablePath 输出目录无法创建时应返回普通失败，而非“渲染器不可用”。
func TestBuildUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("预置文件失败: %v", err)
	}

	out := filepath.Join(blocker, "test-rfp.pdf") // 父路径是普通文件
	b := NewBuilder(canvasrenderer.NewRenderer())
	err := b.Build(out)
	if err == nil {
		t.Fatalf("不可写路径应当失败")
	}
	if errors.Is(err, renderer.ErrUnavailable) {
		t.Fatalf("路径错误不应归类为渲染器不可用: %v", err)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Fatalf("失败时不应产生输出文件")
	}
}

// plainRenderer 实现 renderer.Renderer 但不具备排版能力。
type plainRenderer struct{}

func (plainRenderer) Render(*layout.Result) ([]byte, error) { return nil, nil }

// TestBuildRendererUnavailable 缺失或不具备排版能力的渲染器 → ErrUnavailable，且无输出文件。
func TestBuildRendererUnavailable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "test-rfp.pdf")

	err := NewBuilder(nil).Build(out)
	if !errors.Is(err, renderer.ErrUnavailable) {
		t.Fatalf("nil 渲染器应报 ErrUnavailable，实际: %v", err)
	}

	err = NewBuilder(plainRenderer{}).Build(out)
	if !errors.Is(err, renderer.ErrUnavailable) {
		t.Fatalf("无排版能力的渲染器应报 ErrUnavailable，实际: %v", err)
	}
	if !strings.Contains(err.Error(), "排版") {
		t.Fatalf("错误信息应说明缺少排版能力: %v", err)
	}

	if _, statErr := os.Stat(out); statErr == nil {
		t.Fatalf("失败时不应产生输出文件")
	}
}
