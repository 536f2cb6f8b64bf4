package parserutil_test

import (
	"testing"

	"github.com/xapi-project/xapi/internal/parserutil"
)

func TestVisibilityKeep(t *testing.T) {
	cases := []struct {
		name               string
		vis                parserutil.Visibility
		enableParsePrivate bool
		want               bool
	}{
		{"public always kept", parserutil.VisibilityPublic, false, true},
		{"public kept when enabled too", parserutil.VisibilityPublic, true, true},
		{"private dropped by default", parserutil.VisibilityPrivate, false, false},
		{"private kept when enabled", parserutil.VisibilityPrivate, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.vis.Keep(c.enableParsePrivate); got != c.want {
				t.Errorf("Keep(%v) = %v, want %v", c.enableParsePrivate, got, c.want)
			}
		})
	}
}
