package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder 必填字段缺失时的占位符
const Placeholder = "-"

// Payload 调用方传过来的模板参数，值是字符串或者数字
type Payload map[string]any

// Merge 返回合并之后的新 Payload，other 覆盖同名字段
func (p Payload) Merge(other map[string]any) Payload {
	res := make(Payload, len(p)+len(other))
	for k, v := range p {
		res[k] = v
	}
	for k, v := range other {
		res[k] = v
	}
	return res
}

// Required 必填字段，缺失或者为空时返回占位符
func (p Payload) Required(key string) string {
	if v := p.Optional(key); v != "" {
		return v
	}
	return Placeholder
}

// Optional 可选字段，缺失时返回空字符串
func (p Payload) Optional(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprint(val)
	}
}

// Amount 金额字段，统一保留两位小数
func (p Payload) Amount(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return Placeholder
	}
	var (
		d   decimal.Decimal
		err error
	)
	switch val := v.(type) {
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(val))
	case float64:
		if !finite(val) {
			return Placeholder
		}
		d = decimal.NewFromFloat(val)
	case float32:
		if !finite(float64(val)) {
			return Placeholder
		}
		d = decimal.NewFromFloat32(val)
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case int32:
		d = decimal.NewFromInt32(val)
	default:
		d, err = decimal.NewFromString(fmt.Sprint(val))
	}
	if err != nil {
		return Placeholder
	}
	return d.StringFixed(2)
}

// finite decimal 不接受 NaN 和 Inf
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
