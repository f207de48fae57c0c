// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gateway is the asynchronous client for the inspection gateway
// gRPC service used by operator consoles.
//
// # Model
//
// Every operation is fire-and-forget: methods validate, dispatch a worker
// and return immediately. Outcomes, stream items, progress updates and
// liveness changes all come back as Event values on a single ordered
// channel.
//
// # Usage
//
//	client := gateway.New(gateway.WithLogger(logger))
//	defer client.Close()
//
//	if err := client.Connect("robot-gw:9443"); err != nil {
//	    log.Fatal(err)
//	}
//	client.UploadCad("part.step")
//
//	for ev := range client.Events() {
//	    switch ev := ev.(type) {
//	    case gateway.UploadProgress:
//	        fmt.Printf("\r%d%%", ev.Percent)
//	    case gateway.UploadFinished:
//	        fmt.Println(ev.Result.Message)
//	    }
//	}
//
// # Architecture
//
// The package separates concerns:
//
//   - client.go: session lifecycle, Connect/Disconnect/Close
//   - monitor.go: channel liveness polling and ConnStateChanged edges
//   - calls.go: one-shot RPC dispatch with per-operation deadlines
//   - upload.go: chunked CAD upload with progress reporting
//   - subscribe.go: server-stream subscriptions and media download
//   - convert.go: wire to domain conversion, nil-safe in both directions
//   - events.go: Event types and the ordered delivery queue
//
// Application code should only depend on Client and the Event types; the
// inspectionpb package is an implementation detail of the wire format.
package gateway
