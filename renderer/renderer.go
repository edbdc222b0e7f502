package renderer

import "github.com/ByLCY/vellum/scene"

// Renderer 将布局完成的场景输出为最终文件，例如 PDF、SVG 或终端画面。
// Render 返回生成的数据以及可能的错误，调用前场景需已执行 Layout。
type Renderer interface {
	Render(s *scene.Scene) ([]byte, error)
}
