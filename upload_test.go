// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/roboinspect/gateway/inspectionpb"
)

func writeTempCad(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "part.step")
	data := bytes.Repeat([]byte{0xA5}, size)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write temp cad: %v", err)
	}
	return path
}

func TestUploadCadChunksAndProgress(t *testing.T) {
	const size = uploadChunkSize*2 + 512

	stream := &fakeUploadStream{
		resp: &inspectionpb.UploadCadResponse{Result: okResult(), ModelId: "model-9"},
	}
	stub := &fakeStub{
		uploadCad: func(context.Context) (inspectionpb.InspectionGateway_UploadCadClient, error) {
			return stream, nil
		},
	}
	c, _ := newTestClient(t, stub)

	path := writeTempCad(t, size)
	c.UploadCad(path)

	lastPercent := -1
	for {
		ev := nextEvent(t, c)
		progress, ok := ev.(UploadProgress)
		if !ok {
			fin, ok := ev.(UploadFinished)
			if !ok {
				t.Fatalf("unexpected event %T", ev)
			}
			if !fin.Result.OK() {
				t.Fatalf("result = %+v", fin.Result)
			}
			if fin.ModelID != "model-9" {
				t.Errorf("model id = %q, want model-9", fin.ModelID)
			}
			break
		}
		if progress.Percent <= lastPercent {
			t.Fatalf("progress went from %d to %d", lastPercent, progress.Percent)
		}
		lastPercent = progress.Percent
	}
	if lastPercent != 100 {
		t.Errorf("final progress = %d, want 100", lastPercent)
	}

	chunks := stream.sent()
	if len(chunks) != 3 {
		t.Fatalf("sent %d chunks, want 3", len(chunks))
	}
	var total int
	for i, chunk := range chunks {
		total += len(chunk.Data)
		if chunk.ChunkIndex != uint32(i) {
			t.Errorf("chunk %d has index %d", i, chunk.ChunkIndex)
		}
		if chunk.Filename != "part.step" {
			t.Errorf("chunk %d filename = %q", i, chunk.Filename)
		}
		if eof := i == len(chunks)-1; chunk.Eof != eof {
			t.Errorf("chunk %d eof = %v, want %v", i, chunk.Eof, eof)
		}
		if chunk.UploadId != chunks[0].UploadId {
			t.Errorf("chunk %d upload id differs", i)
		}
	}
	if total != size {
		t.Errorf("sent %d bytes, want %d", total, size)
	}
}

func TestUploadCadEmptyFile(t *testing.T) {
	stream := &fakeUploadStream{
		resp: &inspectionpb.UploadCadResponse{Result: okResult(), ModelId: "model-0"},
	}
	stub := &fakeStub{
		uploadCad: func(context.Context) (inspectionpb.InspectionGateway_UploadCadClient, error) {
			return stream, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.UploadCad(writeTempCad(t, 0))

	if progress, ok := nextEvent(t, c).(UploadProgress); !ok || progress.Percent != 100 {
		t.Fatalf("expected 100%% progress, got %+v", progress)
	}
	if fin, ok := nextEvent(t, c).(UploadFinished); !ok || !fin.Result.OK() {
		t.Fatalf("expected successful UploadFinished, got %+v", fin)
	}

	chunks := stream.sent()
	if len(chunks) != 1 || !chunks[0].Eof || len(chunks[0].Data) != 0 {
		t.Fatalf("expected one empty eof chunk, got %+v", chunks)
	}
}

func TestUploadCadMissingFile(t *testing.T) {
	c, _ := newTestClient(t, &fakeStub{})

	c.UploadCad(filepath.Join(t.TempDir(), "missing.step"))

	fin, ok := nextEvent(t, c).(UploadFinished)
	if !ok {
		t.Fatal("expected UploadFinished")
	}
	if fin.Result.Code != CodeInvalidArgument {
		t.Errorf("code = %v, want %v", fin.Result.Code, CodeInvalidArgument)
	}
}

func TestUploadCadServerRejection(t *testing.T) {
	stream := &fakeUploadStream{
		resp: &inspectionpb.UploadCadResponse{
			Result: &inspectionpb.Result{Code: inspectionpb.ErrorCode_INVALID_ARGUMENT, Message: "unsupported format"},
		},
	}
	stub := &fakeStub{
		uploadCad: func(context.Context) (inspectionpb.InspectionGateway_UploadCadClient, error) {
			return stream, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.UploadCad(writeTempCad(t, 128))

	for {
		ev := nextEvent(t, c)
		if _, ok := ev.(UploadProgress); ok {
			continue
		}
		fin, ok := ev.(UploadFinished)
		if !ok {
			t.Fatalf("unexpected event %T", ev)
		}
		if fin.Result.Code != CodeInvalidArgument || fin.Result.Message != "unsupported format" {
			t.Errorf("result = %+v", fin.Result)
		}
		return
	}
}
