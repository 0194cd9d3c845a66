package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]int{"lines": 3})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"lines\": 3\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLine(&out, map[string]string{"stage": "dedupe"}))
	assert.Equal(t, "{\"stage\":\"dedupe\"}\n", out.String())
}

func TestMarshalError(t *testing.T) {
	blob := MarshalError("read input", map[string]any{"path": "in.txt"})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(blob), &e))
	assert.Equal(t, "read input", e.Message)
	assert.Equal(t, "in.txt", e.Data["path"])
}

func TestWriteError(t *testing.T) {
	var errOut bytes.Buffer

	require.NoError(t, WriteError(&errOut, "save failed", map[string]any{"dir": "/x"}))

	var e Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &e))
	assert.Equal(t, "save failed", e.Message)
	assert.Equal(t, "/x", e.Data["dir"])
}
