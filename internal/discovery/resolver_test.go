package discovery

import (
	"strings"
	"testing"
)

const pythonTestFile = `import unittest


class FooTest(unittest.TestCase):

    def setUp(self):
        self.value = 1

    def test_first(self):
        self.assertEqual(self.value, 1)

    def helper(self):
        return 2

    def test_second(self):
        self.assertEqual(self.helper(), 2)


class BarTest(unittest.TestCase):

    def test_bar(self):
        pass
`

func offsetOf(t *testing.T, text, needle string) int {
	t.Helper()
	i := strings.Index(text, needle)
	if i < 0 {
		t.Fatalf("needle %q not in text", needle)
	}
	return i
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name           string
		text           string
		offset         int
		expectedMethod string
		expectedClass  string
	}{
		{
			name:           "cursor on def line",
			text:           pythonTestFile,
			offset:         offsetOf(t, pythonTestFile, "def test_first"),
			expectedMethod: "test_first",
			expectedClass:  "FooTest",
		},
		{
			name:           "cursor inside method body",
			text:           pythonTestFile,
			offset:         offsetOf(t, pythonTestFile, "self.assertEqual(self.value"),
			expectedMethod: "test_first",
			expectedClass:  "FooTest",
		},
		{
			name:           "nearest preceding test wins",
			text:           pythonTestFile,
			offset:         offsetOf(t, pythonTestFile, "self.helper(), 2"),
			expectedMethod: "test_second",
			expectedClass:  "FooTest",
		},
		{
			name:           "non-test method keeps previous test",
			text:           pythonTestFile,
			offset:         offsetOf(t, pythonTestFile, "return 2"),
			expectedMethod: "test_first",
			expectedClass:  "FooTest",
		},
		{
			name:           "second class still resolves first class",
			text:           pythonTestFile,
			offset:         offsetOf(t, pythonTestFile, "pass"),
			expectedMethod: "test_bar",
			expectedClass:  "FooTest",
		},
		{
			name:           "cursor before any test",
			text:           pythonTestFile,
			offset:         offsetOf(t, pythonTestFile, "self.value = 1"),
			expectedMethod: "",
			expectedClass:  "FooTest",
		},
		{
			name:           "module-level test without class",
			text:           "def test_plain():\n    assert True\n",
			offset:         20,
			expectedMethod: "test_plain",
			expectedClass:  "",
		},
		{
			name:           "offset past end of buffer",
			text:           "class A(object):\n    def test_end(self):\n        pass",
			offset:         1000,
			expectedMethod: "test_end",
			expectedClass:  "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := resolver.Resolve(tt.text, tt.offset)
			if ctx.Method != tt.expectedMethod {
				t.Errorf("expected method %q, got %q", tt.expectedMethod, ctx.Method)
			}
			if ctx.Class != tt.expectedClass {
				t.Errorf("expected class %q, got %q", tt.expectedClass, ctx.Class)
			}
		})
	}
}

func TestResolver_FindClass(t *testing.T) {
	resolver := NewResolver()

	t.Run("class without base list is ignored", func(t *testing.T) {
		if got := resolver.FindClass("class Plain:\n    pass\n"); got != "" {
			t.Errorf("expected no class, got %q", got)
		}
	})

	t.Run("first class wins", func(t *testing.T) {
		if got := resolver.FindClass("class A(X):\nclass B(Y):\n"); got != "A" {
			t.Errorf("expected A, got %q", got)
		}
	})
}

func TestLineEnd(t *testing.T) {
	text := "ab\ncd\nef"
	tests := []struct {
		offset   int
		expected int
	}{
		{-5, 2},
		{0, 2},
		{2, 2},
		{3, 5},
		{6, 8},
		{100, 8},
	}
	for _, tt := range tests {
		if got := LineEnd(text, tt.offset); got != tt.expected {
			t.Errorf("LineEnd(%d): expected %d, got %d", tt.offset, tt.expected, got)
		}
	}
}

func TestOffsetForLine(t *testing.T) {
	text := "ab\ncd\nef"
	tests := []struct {
		line     int
		expected int
	}{
		{0, 0},
		{1, 0},
		{2, 3},
		{3, 6},
		{9, 8},
	}
	for _, tt := range tests {
		if got := OffsetForLine(text, tt.line); got != tt.expected {
			t.Errorf("OffsetForLine(%d): expected %d, got %d", tt.line, tt.expected, got)
		}
	}
}
