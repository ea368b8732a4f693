// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Codec frames [Request] and [Response] records over a byte stream, one JSON
// record per line. It serves both sides of the connection: the server reads
// requests and writes responses, a client (or test) does the opposite.
//
// A Codec is not safe for concurrent use; the protocol has no pipelining, so
// each side alternates reads and writes on its own goroutine.
type Codec struct {
	dec *json.Decoder
	w   *bufio.Writer
	enc *json.Encoder
}

// NewCodec wraps rw in a Codec. Writes are buffered and flushed after every
// encoded frame.
func NewCodec(rw io.ReadWriter) *Codec {
	w := bufio.NewWriter(rw)
	return &Codec{
		dec: json.NewDecoder(rw),
		w:   w,
		enc: json.NewEncoder(w),
	}
}

// ReadRequest decodes the next request frame. It returns io.EOF when the peer
// closed the stream, any decode error on malformed input, and
// [ErrSchemaVersion] on a version mismatch; the session treats all of these
// as a disconnect.
func (c *Codec) ReadRequest(req *Request) error {
	if err := c.dec.Decode(req); err != nil {
		return err
	}

	if req.V != SchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, req.V, SchemaVersion)
	}

	return nil
}

// WriteRequest encodes one request frame and flushes it, stamping the schema
// version.
func (c *Codec) WriteRequest(req *Request) error {
	req.V = SchemaVersion
	if err := c.enc.Encode(req); err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}

	return c.w.Flush()
}

// ReadResponse decodes the next response frame.
func (c *Codec) ReadResponse(resp *Response) error {
	if err := c.dec.Decode(resp); err != nil {
		return err
	}

	if resp.V != SchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, resp.V, SchemaVersion)
	}

	return nil
}

// WriteResponse encodes one response frame and flushes it.
func (c *Codec) WriteResponse(resp *Response) error {
	if err := c.enc.Encode(resp); err != nil {
		return fmt.Errorf("error encoding response: %w", err)
	}

	return c.w.Flush()
}
