// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/roboinspect/gateway/inspectionpb"
)

// uploadChunkSize is the payload size of one UploadCadChunk.
const uploadChunkSize = 64 * 1024

// UploadCad streams a CAD model file to the gateway in chunks. Progress
// arrives as UploadProgress events, one per integer percent, and the
// terminal outcome as an UploadFinished event. The file is read on the
// worker goroutine; nothing is buffered beyond one chunk.
func (c *Client) UploadCad(path string) {
	ok := c.spawn("UploadCad", uploadDeadline, func(ctx context.Context, sess *session) {
		c.uploadCad(ctx, sess, path)
	})
	if !ok {
		c.queue.post(UploadFinished{Result: notConnectedResult()})
	}
}

func (c *Client) uploadCad(ctx context.Context, sess *session, path string) {
	f, err := os.Open(path)
	if err != nil {
		c.queue.post(UploadFinished{Result: Result{
			Code:    CodeInvalidArgument,
			Message: "open cad file: " + err.Error(),
		}})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		c.queue.post(UploadFinished{Result: Result{
			Code:    CodeInvalidArgument,
			Message: "stat cad file: " + err.Error(),
		}})
		return
	}
	total := info.Size()

	stream, err := sess.stub.UploadCad(ctx)
	if err != nil {
		c.queue.post(UploadFinished{Result: resultFromErr(err)})
		return
	}

	uploadID := uuid.NewString()
	filename := filepath.Base(path)
	c.logger.Info("cad upload started", "file", filename, "bytes", total, "upload_id", uploadID)

	var (
		sent        int64
		index       uint32
		lastPercent = -1
	)
	for {
		buf := make([]byte, uploadChunkSize)
		n, rerr := f.Read(buf)
		if rerr != nil && rerr != io.EOF {
			c.queue.post(UploadFinished{Result: Result{
				Code:    CodeInternal,
				Message: "read cad file: " + rerr.Error(),
			}})
			return
		}
		if n == 0 && sent > 0 {
			break
		}

		eof := sent+int64(n) >= total
		chunk := &inspectionpb.UploadCadChunk{
			UploadId:   uploadID,
			Filename:   filename,
			Data:       buf[:n],
			ChunkIndex: index,
			Eof:        eof,
		}
		if err := stream.Send(chunk); err != nil {
			// The server closed the stream early; CloseAndRecv below
			// surfaces the real status.
			break
		}
		sent += int64(n)
		index++

		percent := 100
		if total > 0 {
			percent = int(sent * 100 / total)
		}
		if percent != lastPercent {
			lastPercent = percent
			c.queue.post(UploadProgress{Percent: percent})
		}
		if eof {
			break
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		c.queue.post(UploadFinished{Result: resultFromErr(err)})
		return
	}
	c.logger.Info("cad upload finished", "file", filename, "model_id", resp.ModelId)
	c.queue.post(UploadFinished{
		Result:  resultFromProto(resp.Result),
		ModelID: resp.ModelId,
	})
}
