// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/models"
)

func TestCodec_RequestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	c := NewCodec(&buf)

	sent := Request{
		Cmd:         CmdAddItem,
		Title:       "book",
		Description: "an old book",
		Price:       19.99,
	}
	require.NoError(t, c.WriteRequest(&sent))

	// one frame per line
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	var got Request
	require.NoError(t, c.ReadRequest(&got))

	assert.Equal(t, SchemaVersion, got.V)
	assert.Equal(t, CmdAddItem, got.Cmd)
	assert.Equal(t, "book", got.Title)
	assert.Equal(t, 19.99, got.Price)
}

func TestCodec_ResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	c := NewCodec(&buf)

	sent := ResultResponse(models.OKItem("Item added successfully", 7))
	require.NoError(t, c.WriteResponse(sent))

	var got Response
	require.NoError(t, c.ReadResponse(&got))

	assert.Equal(t, KindResult, got.Kind)
	require.NotNil(t, got.Result)
	assert.True(t, got.Result.Success)
	assert.Equal(t, int64(7), got.Result.ItemID)
}

func TestCodec_ReadRequest_SchemaVersionMismatch(t *testing.T) {
	buf := bytes.NewBufferString(`{"v":99,"cmd":"LOGIN","username":"alice","password":"pw"}` + "\n")
	c := NewCodec(buf)

	var req Request
	err := c.ReadRequest(&req)

	assert.ErrorIs(t, err, ErrSchemaVersion)
}

func TestCodec_ReadRequest_MalformedFrame(t *testing.T) {
	buf := bytes.NewBufferString("definitely not json\n")
	c := NewCodec(buf)

	var req Request
	assert.Error(t, c.ReadRequest(&req))
}

func TestCodec_PipelinedFrames(t *testing.T) {
	var buf bytes.Buffer
	c := NewCodec(&buf)

	require.NoError(t, c.WriteRequest(&Request{Cmd: CmdLogin, Username: "alice", Password: "pw"}))
	require.NoError(t, c.WriteRequest(&Request{Cmd: CmdGetBalance}))

	var first, second Request
	require.NoError(t, c.ReadRequest(&first))
	require.NoError(t, c.ReadRequest(&second))

	assert.Equal(t, CmdLogin, first.Cmd)
	assert.Equal(t, CmdGetBalance, second.Cmd)
}
