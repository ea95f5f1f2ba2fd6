package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCountCommand_JSON(t *testing.T) {
	out, err := runRoot(t, "", "count", "--json", "aabbbc")
	require.NoError(t, err)
	assert.Equal(t, "{\"b\":3,\"a\":2,\"c\":1}\n", out)
}

func TestCountCommand_JoinsArgs(t *testing.T) {
	out, err := runRoot(t, "", "count", "--json", "ab", "a")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":2,\"b\":1,\" \":1}\n", out)
}

func TestCountCommand_Stdin(t *testing.T) {
	out, err := runRoot(t, "ёжё\n", "count", "--json")
	require.NoError(t, err)
	assert.Equal(t, "{\"ё\":2,\"ж\":1,\"\\n\":1}\n", out)
}

func TestCountCommand_Table(t *testing.T) {
	out, err := runRoot(t, "", "count", "b a b")
	require.NoError(t, err)

	assert.Contains(t, out, "5 characters, 3 distinct:")
	assert.Contains(t, out, "Code Point")
	assert.Contains(t, out, "U+0062")
	assert.Contains(t, out, "' '")
	assert.Less(t, strings.Index(out, "U+0062"), strings.Index(out, "U+0061"))
}

func TestCountCommand_Empty(t *testing.T) {
	out, err := runRoot(t, "", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "No characters to count.")
}

func TestCountCommand_TooLong(t *testing.T) {
	_, err := runRoot(t, "", "count", "--max-length", "3", "abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input must not exceed 3 characters")

	_, err = runRoot(t, "", "count", "--max-length", "3", "abc")
	assert.NoError(t, err)
}

func TestDisplayCharacter(t *testing.T) {
	assert.Equal(t, "x", displayCharacter('x'))
	assert.Equal(t, "' '", displayCharacter(' '))
	assert.Equal(t, `\n`, displayCharacter('\n'))
	assert.Equal(t, `'\x00'`, displayCharacter(0))
	assert.Equal(t, "ж", displayCharacter('ж'))
}
