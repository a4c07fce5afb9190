package criteria

import (
	"strconv"
	"strings"
	"unicode"
)

// NoExtension 扩展名列表中表示"无扩展名"的占位符
const NoExtension = "_"

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// ageScale 将数值按单位换算为天数
func ageScale(unit rune, n float64) float64 {
	switch unit {
	case 's':
		return n / 86400
	case 'm':
		return n / 1440
	case 'h':
		return n / 24
	case 'w':
		return n * 7
	case 'y':
		return n * 365.25
	default:
		return n
	}
}

// ParseAge 解析 "7d"、"12h"、"1.5w" 之类的年龄字符串，返回天数
// 没有数字时返回 0，未指定单位时按天计算
func ParseAge(input string) float64 {
	var digits strings.Builder
	hasNumber := false
	unit := 'd'
loop:
	for _, c := range strings.ToLower(input) {
		switch {
		case unicode.IsDigit(c):
			digits.WriteRune(c)
			hasNumber = true
		case c == '.' && hasNumber:
			digits.WriteRune(c)
		case !hasNumber || c == ',' || unicode.IsSpace(c):
		default:
			// 数字之后的第一个字母决定单位，如 "7 days" 中的 d
			unit = c
			break loop
		}
	}
	if !hasNumber {
		return 0
	}
	n, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return ageScale(unit, n)
}

// ParseAgeRange 解析可能带 "-" 的年龄区间，如 "1-3d"
// 第一段没有单位而第二段有时，第一段继承第二段的单位
func ParseAgeRange(input string) (float64, float64) {
	parts := strings.Split(input, "-")
	if len(parts) < 2 {
		return ParseAge(input), 0
	}
	first, second := parts[0], parts[1]
	if firstLetter(first) == 0 {
		if unit := firstLetter(second); unit != 0 {
			first += string(unit)
		}
	}
	return ParseAge(first), ParseAge(second)
}

func firstLetter(s string) rune {
	for _, c := range strings.ToLower(s) {
		if c < unicode.MaxASCII && unicode.IsLetter(c) {
			return c
		}
	}
	return 0
}

func sizeMultiplier(unit rune) float64 {
	switch unit {
	case 'k':
		return kib
	case 'm':
		return mib
	case 'g':
		return gib
	default:
		return 1
	}
}

func sizeValue(digits string, unit rune) uint64 {
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return uint64(n * sizeMultiplier(unit))
}

// ParseSizeRange 解析 "10k,5m" 形式的大小区间
// 第一段数字为最小值，逗号或第二段数字开始最大值；
// 最大值未写单位时继承最小值的单位，只有最大值写了单位时最小值也使用该单位。
// 最大值不大于最小值时忽略。
func ParseSizeRange(input string) SizeRange {
	ref := strings.ToLower(strings.TrimSpace(input))
	if ref == "" {
		return SizeRange{}
	}

	var minDigits, maxDigits strings.Builder
	minUnit, maxUnit := 'b', 'b'
	minDone := false
	inNum := false

	for i, c := range ref {
		switch {
		case unicode.IsDigit(c):
			inNum = true
			if minDone {
				maxDigits.WriteRune(c)
			} else {
				minDigits.WriteRune(c)
			}
		case c == '.' && inNum:
			if minDone {
				maxDigits.WriteRune(c)
			} else {
				minDigits.WriteRune(c)
			}
		case c == ',':
			inNum = false
			if i == 0 || minDigits.Len() > 0 {
				minDone = true
			}
		default:
			if inNum && (c == 'k' || c == 'm' || c == 'g') {
				if minDone {
					maxUnit = c
				} else {
					minUnit = c
				}
			}
			inNum = false
			if minDigits.Len() > 0 {
				minDone = true
			}
		}
	}

	minRef := minUnit
	if minUnit == 'b' && maxUnit != 'b' {
		minRef = maxUnit
	}
	maxRef := maxUnit
	if minRef != 'b' && maxUnit == 'b' {
		maxRef = minRef
	}

	r := SizeRange{Min: sizeValue(minDigits.String(), minRef)}
	if upper := sizeValue(maxDigits.String(), maxRef); upper > r.Min {
		r.Max = upper
	}
	return r
}

// ParseList 逗号分隔，去除空白和空项
func ParseList(input string) []string {
	var items []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ParseExtensions 同 ParseList，另外统一小写并去掉前导的点
func ParseExtensions(input string) []string {
	items := ParseList(input)
	exts := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimPrefix(item, "."))
		if item != "" {
			exts = append(exts, item)
		}
	}
	return exts
}
