// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"context"
	"time"

	"github.com/roboinspect/gateway/inspectionpb"
)

// Per-operation deadlines. Planning is by far the slowest call the
// gateway serves; everything else is bounded interaction with the robot.
const (
	statusDeadline  = 15 * time.Second
	controlDeadline = 30 * time.Second
	targetsDeadline = 60 * time.Second
	planDeadline    = 120 * time.Second
	uploadDeadline  = 300 * time.Second
)

// notConnectedResult is the synthetic outcome for operations issued with
// no live session.
func notConnectedResult() Result {
	return Result{Code: CodeUnavailable, Message: ErrNotConnected.Error()}
}

// spawn runs fn on its own worker goroutine with an op-scoped deadline.
// The worker is tracked so Disconnect can join it.
func (c *Client) spawn(op string, deadline time.Duration, fn func(ctx context.Context, sess *session)) bool {
	// The session check and Add share the lock with Disconnect's session
	// clear, so Add is always ordered before Disconnect's Wait.
	c.mu.Lock()
	sess := c.sess
	if sess == nil {
		c.mu.Unlock()
		return false
	}
	c.workers.Add(1)
	c.mu.Unlock()
	go func() {
		defer c.workers.Done()
		ctx, cancel := context.WithTimeout(context.Background(), deadline)
		defer cancel()
		start := time.Now()
		fn(ctx, sess)
		c.logger.Debug("gateway call finished", "op", op, "elapsed", time.Since(start))
	}()
	return true
}

// SetInspectionTargets replaces the gateway's target set for a CAD model.
// The outcome arrives as a TargetsSet event.
func (c *Client) SetInspectionTargets(modelID, operatorID string, capture CaptureConfig, targets []InspectionTarget) {
	req := &inspectionpb.SetInspectionTargetsRequest{
		ModelId:    modelID,
		OperatorId: operatorID,
		Capture:    captureConfigToProto(capture),
		Targets:    make([]*inspectionpb.InspectionTarget, 0, len(targets)),
	}
	for _, t := range targets {
		req.Targets = append(req.Targets, targetToProto(t))
	}

	ok := c.spawn("SetInspectionTargets", targetsDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.SetInspectionTargets(ctx, req)
		if err != nil {
			c.queue.post(TargetsSet{Result: resultFromErr(err)})
			return
		}
		c.queue.post(TargetsSet{
			Result:       resultFromProto(resp.Result),
			TotalTargets: resp.TotalTargets,
		})
	})
	if !ok {
		c.queue.post(TargetsSet{Result: notConnectedResult()})
	}
}

// PlanInspection asks the gateway to compute an inspection path over the
// current target set. The outcome arrives as a PlanFinished event.
func (c *Client) PlanInspection(modelID, taskName string, opts PlanOptions) {
	req := &inspectionpb.PlanInspectionRequest{
		ModelId:  modelID,
		TaskName: taskName,
		Options:  planOptionsToProto(opts),
	}

	ok := c.spawn("PlanInspection", planDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.PlanInspection(ctx, req)
		if err != nil {
			c.queue.post(PlanFinished{Response: PlanResponse{Result: resultFromErr(err)}})
			return
		}
		c.queue.post(PlanFinished{Response: planResponseFromProto(resp)})
	})
	if !ok {
		c.queue.post(PlanFinished{Response: PlanResponse{Result: notConnectedResult()}})
	}
}

// GetPlan fetches a previously computed plan by id. The outcome arrives
// as a PlanFetched event.
func (c *Client) GetPlan(planID string) {
	req := &inspectionpb.GetPlanRequest{PlanId: planID}

	ok := c.spawn("GetPlan", controlDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.GetPlan(ctx, req)
		if err != nil {
			c.queue.post(PlanFetched{Response: GetPlanResponse{Result: resultFromErr(err)}})
			return
		}
		c.queue.post(PlanFetched{Response: getPlanResponseFromProto(resp)})
	})
	if !ok {
		c.queue.post(PlanFetched{Response: GetPlanResponse{Result: notConnectedResult()}})
	}
}

// StartInspection launches execution of a computed plan. The outcome
// arrives as an InspectionStarted event.
func (c *Client) StartInspection(planID string, dryRun bool) {
	req := &inspectionpb.StartInspectionRequest{PlanId: planID, DryRun: dryRun}

	ok := c.spawn("StartInspection", controlDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.StartInspection(ctx, req)
		if err != nil {
			c.queue.post(InspectionStarted{Result: resultFromErr(err)})
			return
		}
		c.queue.post(InspectionStarted{
			Result: resultFromProto(resp.Result),
			TaskID: resp.TaskId,
		})
	})
	if !ok {
		c.queue.post(InspectionStarted{Result: notConnectedResult()})
	}
}

// PauseInspection requests a pause of the running task.
func (c *Client) PauseInspection(taskID, reason string) {
	c.controlTask("pause", taskID, reason, func(ctx context.Context, sess *session, req *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error) {
		return sess.stub.PauseInspection(ctx, req)
	})
}

// ResumeInspection resumes a paused task.
func (c *Client) ResumeInspection(taskID, reason string) {
	c.controlTask("resume", taskID, reason, func(ctx context.Context, sess *session, req *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error) {
		return sess.stub.ResumeInspection(ctx, req)
	})
}

// StopInspection aborts the running task.
func (c *Client) StopInspection(taskID, reason string) {
	c.controlTask("stop", taskID, reason, func(ctx context.Context, sess *session, req *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error) {
		return sess.stub.StopInspection(ctx, req)
	})
}

// controlTask is the shared body of the pause/resume/stop operations. The
// outcome arrives as a ControlFinished event carrying op. Control workers
// join the same WaitGroup as every other one-shot so Disconnect never
// leaves a control call running behind a closed channel.
func (c *Client) controlTask(op, taskID, reason string, call func(context.Context, *session, *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error)) {
	req := &inspectionpb.ControlTaskRequest{TaskId: taskID, Reason: reason}

	ok := c.spawn(op, controlDeadline, func(ctx context.Context, sess *session) {
		resp, err := call(ctx, sess, req)
		if err != nil {
			c.queue.post(ControlFinished{Op: op, Result: resultFromErr(err)})
			return
		}
		c.queue.post(ControlFinished{Op: op, Result: resultFromProto(resp.Result)})
	})
	if !ok {
		c.queue.post(ControlFinished{Op: op, Result: notConnectedResult()})
	}
}

// GetTaskStatus polls the gateway for a one-shot task status snapshot. On
// success the snapshot arrives as a TaskStatusReceived event; on failure
// an ErrorOccurred event is posted instead.
func (c *Client) GetTaskStatus(taskID string) {
	req := &inspectionpb.GetTaskStatusRequest{TaskId: taskID}

	ok := c.spawn("GetTaskStatus", statusDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.GetTaskStatus(ctx, req)
		if err != nil {
			c.queue.post(ErrorOccurred{Message: "GetTaskStatus: " + resultFromErr(err).Message})
			return
		}
		c.queue.post(TaskStatusReceived{Status: taskStatusFromProto(resp.Status)})
	})
	if !ok {
		c.queue.post(ErrorOccurred{Message: "GetTaskStatus: " + ErrNotConnected.Error()})
	}
}

// GetNavMap fetches the navigation map descriptor, thumbnail included.
// An empty mapID selects the gateway's active map. The outcome arrives as
// a NavMapReceived event.
func (c *Client) GetNavMap(mapID string) {
	req := &inspectionpb.GetNavMapRequest{MapId: mapID, IncludeImageThumbnail: true}

	ok := c.spawn("GetNavMap", controlDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.GetNavMap(ctx, req)
		if err != nil {
			c.queue.post(NavMapReceived{Result: resultFromErr(err)})
			return
		}
		c.queue.post(NavMapReceived{
			Result: resultFromProto(resp.Result),
			Map:    navMapInfoFromProto(resp.Map),
		})
	})
	if !ok {
		c.queue.post(NavMapReceived{Result: notConnectedResult()})
	}
}

// ListCaptures fetches the capture records of a task, thumbnails included.
// A negative pointID selects every inspection point. The outcome arrives
// as a CapturesListed event.
func (c *Client) ListCaptures(taskID string, pointID int32) {
	req := &inspectionpb.ListCapturesRequest{TaskId: taskID, PointId: pointID, IncludeThumbnails: true}

	ok := c.spawn("ListCaptures", controlDeadline, func(ctx context.Context, sess *session) {
		resp, err := sess.stub.ListCaptures(ctx, req)
		if err != nil {
			c.queue.post(CapturesListed{Result: resultFromErr(err)})
			return
		}
		records := make([]CaptureRecord, 0, len(resp.Captures))
		for _, rec := range resp.Captures {
			records = append(records, captureRecordFromProto(rec))
		}
		c.queue.post(CapturesListed{
			Result:   resultFromProto(resp.Result),
			Captures: records,
		})
	})
	if !ok {
		c.queue.post(CapturesListed{Result: notConnectedResult()})
	}
}
