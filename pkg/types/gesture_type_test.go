package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGestureKind(t *testing.T) {
	tests := []struct {
		name    string
		kind    GestureKind
		str     string
		isPress bool
		isTap   bool
	}{
		{name: "none", kind: GestureNone, str: "none"},
		{name: "tap", kind: GestureTap, str: "tap", isTap: true},
		{name: "double tap", kind: GestureDoubleTap, str: "double_tap", isTap: true},
		{name: "hold", kind: GestureHold, str: "hold", isPress: true},
		{name: "drag", kind: GestureDrag, str: "drag", isPress: true},
		{name: "past last kind", kind: GestureDrag + 1, str: "unknown"},
		{name: "negative", kind: -1, str: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.kind.String())
			assert.Equal(t, tt.isPress, tt.kind.IsPress())
			assert.Equal(t, tt.isTap, tt.kind.IsTap())
		})
	}
}
