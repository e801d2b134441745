// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
)

func ParseGLVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// StatusString names a CheckFramebufferStatus result.
func StatusString(st Enum) string {
	switch st {
	case FRAMEBUFFER_COMPLETE:
		return "complete"
	case FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "incomplete attachment"
	case FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "missing attachment"
	case FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "incomplete draw buffer"
	case FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "incomplete read buffer"
	case FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "incomplete multisample"
	case FRAMEBUFFER_UNSUPPORTED:
		return "unsupported"
	default:
		return fmt.Sprintf("status 0x%x", uint(st))
	}
}
