package layout

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Options 配置布局系统。
type Options struct {
	// RTL 为全局从右到左标志，只作用于声明了 UseRTL 的组件。
	RTL bool
	// SizeProperty 原样传给 Element.SetLayoutRect，供调用方做脏标记。
	SizeProperty int
	// Logger 默认使用 logrus.StandardLogger()。
	Logger logrus.FieldLogger
	// Strict 时冲突的提示配置直接 panic，否则只记录警告并降级处理。
	Strict bool
	// ManualUpdates 关闭自动更新：Update 不再布局，只有 Apply 生效。
	ManualUpdates bool
}

// epsilon is the tolerance used by line fitting and slack redistribution.
const epsilon = 1e-4

// clamp restricts v to [lo, hi]. When lo > hi, hi wins.
func clamp(v, lo, hi float64) float64 {
	return min(hi, max(v, lo))
}

type asserter struct {
	log    logrus.FieldLogger
	strict bool
}

func (a asserter) assertf(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if a.strict {
		panic("layout: " + msg)
	}
	a.log.Warn(msg)
	return false
}
