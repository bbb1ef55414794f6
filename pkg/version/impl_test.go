package version

import (
	"testing"
)

func TestStringPrecedence(t *testing.T) {
	testCases := []struct {
		expected string
		info     Info
	}{
		{"unknown", Info{}},
		{"v1.2.3", Info{Version: "v1.2.3"}},
		{"v1.2.3", Info{Commit: "abc1234", Version: "v1.2.3"}},
		{"v1.2.3-dirty", Info{Dirty: true, Version: "v1.2.3"}},
		{"devel-abc1234", Info{Commit: "abc1234"}},
		{"devel-abc1234-dirty", Info{Commit: "abc1234", Dirty: true}},
	}
	for _, testCase := range testCases {
		if result := testCase.info.String(); result != testCase.expected {
			t.Errorf("expected: %s, got: %s", testCase.expected, result)
		}
	}
}

func TestGetDoesNotPanic(t *testing.T) {
	info := Get()
	if info.String() == "" {
		t.Error("empty version string")
	}
}
