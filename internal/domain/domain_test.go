package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTest_Target(t *testing.T) {
	test := Test{Path: "/proj/tests/test_foo.py", Class: "FooTest", Method: "test_x"}
	assert.Equal(t, "test_foo.py:FooTest.test_x", test.Target())
	assert.Equal(t, "/proj/tests", test.Dir())
	assert.Equal(t, "test_foo.py", test.FileName())

	test.Class = ""
	assert.Equal(t, "test_foo.py:test_x", test.Target())
}

func TestInvocation_String(t *testing.T) {
	inv := Invocation{Runner: "nosetests", Args: []string{"test_foo.py:FooTest.test_x"}}
	assert.Equal(t, "nosetests test_foo.py:FooTest.test_x", inv.String())

	inv.Env = Environment{Root: "/a/b", Activate: "/a/b/bin/activate"}
	assert.Equal(t, "source /a/b/bin/activate && nosetests test_foo.py:FooTest.test_x", inv.String())
}

func TestEnvironment_ActivationCommand(t *testing.T) {
	assert.Empty(t, Environment{Dir: "/a"}.ActivationCommand())
	assert.False(t, Environment{Dir: "/a"}.Found())
	assert.Equal(t, "source /a/b/bin/activate", Environment{Activate: "/a/b/bin/activate"}.ActivationCommand())
}

func TestExecutionResult_Output(t *testing.T) {
	r := ExecutionResult{Stdout: "OK\n", Stderr: ""}
	assert.Equal(t, "OK\n", r.Output())

	r.Stderr = "E\n"
	assert.Equal(t, "E\nOK\n", r.Output())
}
