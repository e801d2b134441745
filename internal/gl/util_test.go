// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"testing"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in  string
		ver [2]int
		ok  bool
	}{
		{"2.1 Mesa 23.2.1", [2]int{2, 1}, true},
		{"4.6.0 NVIDIA 535.129.03", [2]int{4, 6}, true},
		{"OpenGL ES 3.2 Mesa 23.2.1", [2]int{3, 2}, true},
		{"garbage", [2]int{}, false},
	}
	for _, test := range tests {
		ver, err := ParseGLVersion(test.in)
		if (err == nil) != test.ok {
			t.Errorf("%q: got error %v, expected ok=%v", test.in, err, test.ok)
			continue
		}
		if test.ok && ver != test.ver {
			t.Errorf("%q: got %v, expected %v", test.in, ver, test.ver)
		}
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusString(FRAMEBUFFER_COMPLETE); got != "complete" {
		t.Errorf("got %q", got)
	}
	if got := StatusString(0x1234); got != "status 0x1234" {
		t.Errorf("got %q", got)
	}
}
