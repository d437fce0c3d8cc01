package outline

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	TypeColor
	ValueColor
	SepColor
	MetaColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:  color.RGB(128, 168, 196).SprintfFunc(),
			TypeColor:  color.RGB(74, 92, 138).SprintfFunc(),
			ValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			SepColor:   color.RGB(255, 0, 196).SprintfFunc(),
			MetaColor:  color.BlueString,
		},
	}
}

func (c *Colors) Color(attr ColorAttr, format string, args ...any) string {
	if c == nil {
		return colorDefault(format, args...)
	}
	f, ok := c.Map[attr]
	if !ok {
		return c.Default(format, args...)
	}
	return f(format, args...)
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
