package progdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rex/internal/compiler"
)

func TestDump(t *testing.T) {
	prog, err := compiler.Compile("[ab]*c")
	require.Nil(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(prog, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Program: T=4 G=1\n"), "got:\n%s", out)
	assert.Contains(t, out, "tok=*")
	assert.Contains(t, out, "ji=1")
	assert.Contains(t, out, "ji=2")
	assert.Contains(t, out, "accept")
}

func TestTokLabelControlByte(t *testing.T) {
	assert.Equal(t, "^@", tokLabel(0x00, 0))
	assert.Equal(t, "[^@|", tokLabel(0x00, 1))
	assert.Equal(t, "|^@]", tokLabel(0x00, 2))
	assert.Equal(t, "*", tokLabel('*', 0))
	assert.Equal(t, "a", tokLabel('a', 0))
}
