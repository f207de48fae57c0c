// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

// Wire <-> domain conversions. Every other file in this package handles
// inspectionpb messages only through these helpers, so consumers of the
// domain types never see schema churn.
//
// All fromProto helpers accept nil and return the zero domain value; enum
// mappings are exhaustive with an explicit fallback so an unknown wire value
// from a newer gateway degrades to "unspecified" instead of crashing the HMI.

import (
	"time"

	"google.golang.org/grpc/status"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/roboinspect/gateway/inspectionpb"
)

// ---------------------------------------------------------------------------
// Timestamps
// ---------------------------------------------------------------------------

// timeFromProto treats an all-zero wire timestamp as absent. The gateway
// leaves unset times at their defaults, and epoch zero must never be shown
// as a real instant.
func timeFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil || (ts.Seconds == 0 && ts.Nanos == 0) {
		return time.Time{}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

func timeToProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// ---------------------------------------------------------------------------
// Result / error codes
// ---------------------------------------------------------------------------

func errorCodeFromProto(c inspectionpb.ErrorCode) ErrorCode {
	switch c {
	case inspectionpb.ErrorCode_OK:
		return CodeOK
	case inspectionpb.ErrorCode_INVALID_ARGUMENT:
		return CodeInvalidArgument
	case inspectionpb.ErrorCode_NOT_FOUND:
		return CodeNotFound
	case inspectionpb.ErrorCode_TIMEOUT:
		return CodeTimeout
	case inspectionpb.ErrorCode_BUSY:
		return CodeBusy
	case inspectionpb.ErrorCode_INTERNAL:
		return CodeInternal
	case inspectionpb.ErrorCode_UNAVAILABLE:
		return CodeUnavailable
	case inspectionpb.ErrorCode_CONFLICT:
		return CodeConflict
	default:
		return CodeUnspecified
	}
}

func resultFromProto(r *inspectionpb.Result) Result {
	if r == nil {
		return Result{}
	}
	return Result{Code: errorCodeFromProto(r.Code), Message: r.Message}
}

// resultFromErr folds a transport-level failure into the unified Result
// shape: the call itself did not complete, so the application code is
// CodeInternal and the message is the transport's own diagnostic.
func resultFromErr(err error) Result {
	if err == nil {
		return Result{Code: CodeOK}
	}
	return Result{Code: CodeInternal, Message: status.Convert(err).Message()}
}

// ---------------------------------------------------------------------------
// Geometry
// ---------------------------------------------------------------------------

func vec3FromProto(v *inspectionpb.Vector3) Vec3 {
	if v == nil {
		return Vec3{}
	}
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func vec3ToProto(v Vec3) *inspectionpb.Vector3 {
	return &inspectionpb.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func quatFromProto(q *inspectionpb.Quaternion) Quat {
	if q == nil {
		return Quat{}
	}
	return Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

func quatToProto(q Quat) *inspectionpb.Quaternion {
	return &inspectionpb.Quaternion{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

func pose2DFromProto(p *inspectionpb.Pose2D) Pose2D {
	if p == nil {
		return Pose2D{}
	}
	return Pose2D{X: p.X, Y: p.Y, Yaw: p.Yaw, FrameID: p.FrameId}
}

func pose2DToProto(p Pose2D) *inspectionpb.Pose2D {
	return &inspectionpb.Pose2D{X: p.X, Y: p.Y, Yaw: p.Yaw, FrameId: p.FrameID}
}

func pose3DFromProto(p *inspectionpb.Pose3D) Pose3D {
	if p == nil {
		return Pose3D{}
	}
	return Pose3D{
		Position:    vec3FromProto(p.Position),
		Orientation: quatFromProto(p.Orientation),
		FrameID:     p.FrameId,
	}
}

func pose3DToProto(p Pose3D) *inspectionpb.Pose3D {
	return &inspectionpb.Pose3D{
		Position:    vec3ToProto(p.Position),
		Orientation: quatToProto(p.Orientation),
		FrameId:     p.FrameID,
	}
}

func surfacePointFromProto(sp *inspectionpb.SurfacePoint) SurfacePoint {
	if sp == nil {
		return SurfacePoint{}
	}
	return SurfacePoint{
		Position:  vec3FromProto(sp.Position),
		Normal:    vec3FromProto(sp.Normal),
		FrameID:   sp.FrameId,
		FaceIndex: sp.FaceIndex,
	}
}

func surfacePointToProto(sp SurfacePoint) *inspectionpb.SurfacePoint {
	return &inspectionpb.SurfacePoint{
		Position:  vec3ToProto(sp.Position),
		Normal:    vec3ToProto(sp.Normal),
		FrameId:   sp.FrameID,
		FaceIndex: sp.FaceIndex,
	}
}

func viewHintFromProto(vh *inspectionpb.ViewHint) ViewHint {
	if vh == nil {
		return ViewHint{}
	}
	return ViewHint{ViewDirection: vec3FromProto(vh.ViewDirection), RollDeg: vh.RollDeg}
}

func viewHintToProto(vh ViewHint) *inspectionpb.ViewHint {
	return &inspectionpb.ViewHint{ViewDirection: vec3ToProto(vh.ViewDirection), RollDeg: vh.RollDeg}
}

// ---------------------------------------------------------------------------
// Media
// ---------------------------------------------------------------------------

func mediaRefFromProto(m *inspectionpb.MediaRef) MediaRef {
	if m == nil {
		return MediaRef{}
	}
	return MediaRef{
		MediaID:   m.MediaId,
		MimeType:  m.MimeType,
		SHA256:    m.Sha256,
		URL:       m.Url,
		SizeBytes: m.SizeBytes,
	}
}

func imageRefFromProto(img *inspectionpb.ImageRef) ImageRef {
	if img == nil {
		return ImageRef{}
	}
	return ImageRef{
		Media:         mediaRefFromProto(img.Media),
		Width:         img.Width,
		Height:        img.Height,
		ThumbnailJPEG: img.ThumbnailJpeg,
	}
}

// ---------------------------------------------------------------------------
// Defects
// ---------------------------------------------------------------------------

func bboxFromProto(bb *inspectionpb.BoundingBox2D) BoundingBox2D {
	if bb == nil {
		return BoundingBox2D{}
	}
	return BoundingBox2D{X: bb.X, Y: bb.Y, W: bb.W, H: bb.H}
}

func defectFromProto(dr *inspectionpb.DefectResult) DefectResult {
	if dr == nil {
		return DefectResult{}
	}
	return DefectResult{
		HasDefect:  dr.HasDefect,
		DefectType: dr.DefectType,
		Confidence: dr.Confidence,
		BBox:       bboxFromProto(dr.Bbox),
	}
}

func defectsFromProto(drs []*inspectionpb.DefectResult) []DefectResult {
	if len(drs) == 0 {
		return nil
	}
	out := make([]DefectResult, 0, len(drs))
	for _, dr := range drs {
		out = append(out, defectFromProto(dr))
	}
	return out
}

// ---------------------------------------------------------------------------
// Targets / capture configuration
// ---------------------------------------------------------------------------

func targetToProto(t InspectionTarget) *inspectionpb.InspectionTarget {
	return &inspectionpb.InspectionTarget{
		PointId: t.PointID,
		GroupId: t.GroupID,
		Surface: surfacePointToProto(t.Surface),
		View:    viewHintToProto(t.View),
	}
}

func captureConfigToProto(cc CaptureConfig) *inspectionpb.CaptureConfig {
	return &inspectionpb.CaptureConfig{
		CameraId:             cc.CameraID,
		FocusDistanceM:       cc.FocusDistanceM,
		FovHDeg:              cc.FOVHDeg,
		FovVDeg:              cc.FOVVDeg,
		MaxTiltFromNormalDeg: cc.MaxTiltFromNormalDeg,
	}
}

// ---------------------------------------------------------------------------
// Plan options / path / statistics
// ---------------------------------------------------------------------------

func planOptionsToProto(po PlanOptions) *inspectionpb.PlanOptions {
	return &inspectionpb.PlanOptions{
		CandidateRadiusM:      po.CandidateRadiusM,
		CandidateYawStepDeg:   po.CandidateYawStepDeg,
		EnableCollisionCheck:  po.EnableCollisionCheck,
		EnableTspOptimization: po.EnableTSPOptimization,
		IkSolver:              po.IKSolver,
		Weights: &inspectionpb.PlanningWeights{
			WAgvDistance:    po.Weights.AGVDistance,
			WJointDelta:     po.Weights.JointDelta,
			WManipulability: po.Weights.Manipulability,
			WViewError:      po.Weights.ViewError,
			WJointLimit:     po.Weights.JointLimit,
		},
	}
}

func planOptionsFromProto(po *inspectionpb.PlanOptions) PlanOptions {
	if po == nil {
		return PlanOptions{}
	}
	out := PlanOptions{
		CandidateRadiusM:      po.CandidateRadiusM,
		CandidateYawStepDeg:   po.CandidateYawStepDeg,
		EnableCollisionCheck:  po.EnableCollisionCheck,
		EnableTSPOptimization: po.EnableTspOptimization,
		IKSolver:              po.IkSolver,
	}
	if w := po.Weights; w != nil {
		out.Weights = PlanningWeights{
			AGVDistance:    w.WAgvDistance,
			JointDelta:     w.WJointDelta,
			Manipulability: w.WManipulability,
			ViewError:      w.WViewError,
			JointLimit:     w.WJointLimit,
		}
	}
	return out
}

func inspectionPointFromProto(ip *inspectionpb.InspectionPoint) InspectionPoint {
	if ip == nil {
		return InspectionPoint{}
	}
	out := InspectionPoint{
		PointID:         ip.PointId,
		GroupID:         ip.GroupId,
		AGVPose:         pose2DFromProto(ip.AgvPose),
		ArmPose:         pose3DFromProto(ip.ArmPose),
		ExpectedQuality: ip.ExpectedQuality,
		PlanningCost:    ip.PlanningCost,
		TCPPoseGoal:     pose3DFromProto(ip.TcpPoseGoal),
		CameraPose:      pose3DFromProto(ip.CameraPose),
		CameraID:        ip.CameraId,
	}
	copyJoints(&out.ArmJointGoal, ip.ArmJointGoal)
	return out
}

// copyJoints fills a fixed 6-DOF array from a repeated wire field. Excess
// wire values are ignored and missing ones keep their zero default; a
// mismatched gateway must not be able to corrupt memory or fail the call.
func copyJoints(dst *[6]float64, src []float64) {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst[:n], src[:n])
}

func inspectionPathFromProto(p *inspectionpb.InspectionPath) InspectionPath {
	if p == nil {
		return InspectionPath{}
	}
	out := InspectionPath{
		TotalPoints:        p.TotalPoints,
		EstimatedDistanceM: p.EstimatedDistanceM,
		EstimatedDurationS: p.EstimatedDurationS,
	}
	if len(p.Waypoints) > 0 {
		out.Waypoints = make([]InspectionPoint, 0, len(p.Waypoints))
		for _, wp := range p.Waypoints {
			out.Waypoints = append(out.Waypoints, inspectionPointFromProto(wp))
		}
	}
	return out
}

func planningStatsFromProto(ps *inspectionpb.PlanningStatistics) PlanningStatistics {
	if ps == nil {
		return PlanningStatistics{}
	}
	return PlanningStatistics{
		CandidatePoseCount:     ps.CandidatePoseCount,
		IKSuccessCount:         ps.IkSuccessCount,
		CollisionFilteredCount: ps.CollisionFilteredCount,
		PlanningTimeMs:         ps.PlanningTimeMs,
	}
}

// ---------------------------------------------------------------------------
// Task status
// ---------------------------------------------------------------------------

func taskPhaseFromProto(p inspectionpb.TaskPhase) TaskPhase {
	switch p {
	case inspectionpb.TaskPhase_IDLE:
		return PhaseIdle
	case inspectionpb.TaskPhase_LOCALIZING:
		return PhaseLocalizing
	case inspectionpb.TaskPhase_PLANNING:
		return PhasePlanning
	case inspectionpb.TaskPhase_EXECUTING:
		return PhaseExecuting
	case inspectionpb.TaskPhase_PAUSED:
		return PhasePaused
	case inspectionpb.TaskPhase_COMPLETED:
		return PhaseCompleted
	case inspectionpb.TaskPhase_FAILED:
		return PhaseFailed
	case inspectionpb.TaskPhase_STOPPED:
		return PhaseStopped
	default:
		return PhaseUnspecified
	}
}

func agvStatusFromProto(a *inspectionpb.AgvStatus) AGVStatus {
	if a == nil {
		return AGVStatus{}
	}
	return AGVStatus{
		Connected:           a.Connected,
		Arrived:             a.Arrived,
		Moving:              a.Moving,
		Stopped:             a.Stopped,
		CurrentPose:         pose2DFromProto(a.CurrentPose),
		BatteryPercent:      a.BatteryPercent,
		ErrorCode:           a.ErrorCode,
		LinearVelocityMps:   a.LinearVelocityMps,
		AngularVelocityRps:  a.AngularVelocityRps,
		GoalPose:            pose2DFromProto(a.GoalPose),
		MapID:               a.MapId,
		LocalizationQuality: a.LocalizationQuality,
	}
}

func armStatusFromProto(a *inspectionpb.ArmStatus) ArmStatus {
	if a == nil {
		return ArmStatus{}
	}
	out := ArmStatus{
		Connected:      a.Connected,
		Arrived:        a.Arrived,
		Moving:         a.Moving,
		Manipulability: a.Manipulability,
		ErrorCode:      a.ErrorCode,
		ServoEnabled:   a.ServoEnabled,
		TCPPose:        pose3DFromProto(a.TcpPose),
		BasePose:       pose3DFromProto(a.BasePose),
	}
	copyJoints(&out.CurrentJoints, a.CurrentJoints)
	return out
}

func taskStatusFromProto(ts *inspectionpb.TaskStatus) TaskStatus {
	if ts == nil {
		return TaskStatus{}
	}
	return TaskStatus{
		TaskID:               ts.TaskId,
		Phase:                taskPhaseFromProto(ts.Phase),
		ProgressPercent:      ts.ProgressPercent,
		CurrentAction:        ts.CurrentAction,
		ErrorMessage:         ts.ErrorMessage,
		AGV:                  agvStatusFromProto(ts.Agv),
		Arm:                  armStatusFromProto(ts.Arm),
		UpdatedAt:            timeFromProto(ts.UpdatedAt),
		PlanID:               ts.PlanId,
		TaskName:             ts.TaskName,
		CurrentWaypointIndex: ts.CurrentWaypointIndex,
		CurrentPointID:       ts.CurrentPointId,
		TotalWaypoints:       ts.TotalWaypoints,
		InterlockOK:          ts.InterlockOk,
		InterlockMessage:     ts.InterlockMessage,
		RemainingTimeEstS:    ts.RemainingTimeEstS,
		StartedAt:            timeFromProto(ts.StartedAt),
		FinishedAt:           timeFromProto(ts.FinishedAt),
	}
}

// ---------------------------------------------------------------------------
// Inspection events
// ---------------------------------------------------------------------------

func eventTypeFromProto(t inspectionpb.InspectionEventType) InspectionEventType {
	switch t {
	case inspectionpb.InspectionEventType_INFO:
		return EventInfo
	case inspectionpb.InspectionEventType_WARN:
		return EventWarn
	case inspectionpb.InspectionEventType_ERROR:
		return EventError
	case inspectionpb.InspectionEventType_CAPTURED:
		return EventCaptured
	case inspectionpb.InspectionEventType_DEFECT_FOUND:
		return EventDefectFound
	default:
		return EventUnspecified
	}
}

func inspectionEventFromProto(ev *inspectionpb.InspectionEvent) InspectionEvent {
	if ev == nil {
		return InspectionEvent{}
	}
	return InspectionEvent{
		TaskID:     ev.TaskId,
		PointID:    ev.PointId,
		Type:       eventTypeFromProto(ev.Type),
		Message:    ev.Message,
		Defect:     defectFromProto(ev.Defect),
		Timestamp:  timeFromProto(ev.Timestamp),
		CaptureID:  ev.CaptureId,
		CameraID:   ev.CameraId,
		Image:      imageRefFromProto(ev.Image),
		Defects:    defectsFromProto(ev.Defects),
		CameraPose: pose3DFromProto(ev.CameraPose),
	}
}

// ---------------------------------------------------------------------------
// Capture records / navigation map
// ---------------------------------------------------------------------------

func captureRecordFromProto(cr *inspectionpb.CaptureRecord) CaptureRecord {
	if cr == nil {
		return CaptureRecord{}
	}
	return CaptureRecord{
		TaskID:     cr.TaskId,
		PointID:    cr.PointId,
		CaptureID:  cr.CaptureId,
		CameraID:   cr.CameraId,
		Image:      imageRefFromProto(cr.Image),
		Defects:    defectsFromProto(cr.Defects),
		CapturedAt: timeFromProto(cr.CapturedAt),
	}
}

func navMapInfoFromProto(nm *inspectionpb.NavMapInfo) NavMapInfo {
	if nm == nil {
		return NavMapInfo{}
	}
	return NavMapInfo{
		MapID:               nm.MapId,
		Name:                nm.Name,
		ResolutionMPerPixel: nm.ResolutionMPerPixel,
		Width:               nm.Width,
		Height:              nm.Height,
		Origin:              pose2DFromProto(nm.Origin),
		Image:               imageRefFromProto(nm.Image),
		UpdatedAt:           timeFromProto(nm.UpdatedAt),
	}
}

// ---------------------------------------------------------------------------
// Planning responses
// ---------------------------------------------------------------------------

func planResponseFromProto(resp *inspectionpb.PlanInspectionResponse) PlanResponse {
	if resp == nil {
		return PlanResponse{}
	}
	return PlanResponse{
		Result: resultFromProto(resp.Result),
		PlanID: resp.PlanId,
		Path:   inspectionPathFromProto(resp.Path),
		Stats:  planningStatsFromProto(resp.Stats),
	}
}

func getPlanResponseFromProto(resp *inspectionpb.GetPlanResponse) GetPlanResponse {
	if resp == nil {
		return GetPlanResponse{}
	}
	return GetPlanResponse{
		Result:    resultFromProto(resp.Result),
		PlanID:    resp.PlanId,
		ModelID:   resp.ModelId,
		TaskName:  resp.TaskName,
		Options:   planOptionsFromProto(resp.Options),
		Path:      inspectionPathFromProto(resp.Path),
		Stats:     planningStatsFromProto(resp.Stats),
		CreatedAt: timeFromProto(resp.CreatedAt),
	}
}
