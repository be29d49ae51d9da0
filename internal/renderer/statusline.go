package renderer

import (
	"fmt"
	"strings"
)

// StatusInfo is what the statusline displays.
type StatusInfo struct {
	Page       int
	TotalPages int
	Zoom       int
	Rotation   int
	CanUndo    bool
	CanRedo    bool
	Message    string
}

// FormatStatus builds the statusline text, padded or truncated to
// width: view state on the left, transient message on the right.
func FormatStatus(info StatusInfo, width int) string {
	undo := "-"
	if info.CanUndo {
		undo = "u"
	}
	redo := "-"
	if info.CanRedo {
		redo = "r"
	}

	left := fmt.Sprintf(" %d/%d  %d%%  %d°  [%s%s]",
		info.Page, info.TotalPages, info.Zoom, info.Rotation, undo, redo)

	right := ""
	if info.Message != "" {
		right = info.Message + " "
	}

	pad := width - len([]rune(left)) - len([]rune(right))
	if pad < 1 {
		line := left + " " + right
		runes := []rune(line)
		if len(runes) > width {
			runes = runes[:max(0, width)]
		}
		return string(runes)
	}
	return left + strings.Repeat(" ", pad) + right
}
