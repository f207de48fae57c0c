// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package inspectionpb contains hand-maintained bindings for the
// inspection.gateway.v1.InspectionGateway wire contract.
//
// The message set mirrors inspection_gateway.proto, which is owned by the
// gateway team and treated here as a fixed external contract. Only the
// client side is bound; the HMI never serves this API.
//
// Messages are legacy-style structs with protobuf field tags, which the
// gRPC proto codec marshals via the protobuf-go legacy support. Keep field
// numbers in sync with the schema when the gateway revs it.
package inspectionpb

import (
	"fmt"

	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// ErrorCode mirrors the schema's ErrorCode enum.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED      ErrorCode = 0
	ErrorCode_OK               ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_TIMEOUT          ErrorCode = 4
	ErrorCode_BUSY             ErrorCode = 5
	ErrorCode_INTERNAL         ErrorCode = 6
	ErrorCode_UNAVAILABLE      ErrorCode = 7
	ErrorCode_CONFLICT         ErrorCode = 8
)

// TaskPhase mirrors the schema's TaskPhase enum.
type TaskPhase int32

const (
	TaskPhase_UNSPECIFIED TaskPhase = 0
	TaskPhase_IDLE        TaskPhase = 1
	TaskPhase_LOCALIZING  TaskPhase = 2
	TaskPhase_PLANNING    TaskPhase = 3
	TaskPhase_EXECUTING   TaskPhase = 4
	TaskPhase_PAUSED      TaskPhase = 5
	TaskPhase_COMPLETED   TaskPhase = 6
	TaskPhase_FAILED      TaskPhase = 7
	TaskPhase_STOPPED     TaskPhase = 8
)

// InspectionEventType mirrors the schema's InspectionEventType enum.
type InspectionEventType int32

const (
	InspectionEventType_UNSPECIFIED  InspectionEventType = 0
	InspectionEventType_INFO         InspectionEventType = 1
	InspectionEventType_WARN         InspectionEventType = 2
	InspectionEventType_ERROR        InspectionEventType = 3
	InspectionEventType_CAPTURED     InspectionEventType = 4
	InspectionEventType_DEFECT_FOUND InspectionEventType = 5
)

// ---------------------------------------------------------------------------
// Shared value messages
// ---------------------------------------------------------------------------

type Result struct {
	Code    ErrorCode `protobuf:"varint,1,opt,name=code,proto3,enum=inspection.gateway.v1.ErrorCode" json:"code,omitempty"`
	Message string    `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *Result) Reset()         { *m = Result{} }
func (m *Result) String() string { return fmt.Sprintf("%+v", *m) }
func (*Result) ProtoMessage()    {}

type Vector3 struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float64 `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
}

func (m *Vector3) Reset()         { *m = Vector3{} }
func (m *Vector3) String() string { return fmt.Sprintf("%+v", *m) }
func (*Vector3) ProtoMessage()    {}

type Quaternion struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float64 `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
	W float64 `protobuf:"fixed64,4,opt,name=w,proto3" json:"w,omitempty"`
}

func (m *Quaternion) Reset()         { *m = Quaternion{} }
func (m *Quaternion) String() string { return fmt.Sprintf("%+v", *m) }
func (*Quaternion) ProtoMessage()    {}

type Pose2D struct {
	X       float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y       float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Yaw     float64 `protobuf:"fixed64,3,opt,name=yaw,proto3" json:"yaw,omitempty"`
	FrameId string  `protobuf:"bytes,4,opt,name=frame_id,json=frameId,proto3" json:"frame_id,omitempty"`
}

func (m *Pose2D) Reset()         { *m = Pose2D{} }
func (m *Pose2D) String() string { return fmt.Sprintf("%+v", *m) }
func (*Pose2D) ProtoMessage()    {}

type Pose3D struct {
	Position    *Vector3    `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Orientation *Quaternion `protobuf:"bytes,2,opt,name=orientation,proto3" json:"orientation,omitempty"`
	FrameId     string      `protobuf:"bytes,3,opt,name=frame_id,json=frameId,proto3" json:"frame_id,omitempty"`
}

func (m *Pose3D) Reset()         { *m = Pose3D{} }
func (m *Pose3D) String() string { return fmt.Sprintf("%+v", *m) }
func (*Pose3D) ProtoMessage()    {}

type SurfacePoint struct {
	Position  *Vector3 `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Normal    *Vector3 `protobuf:"bytes,2,opt,name=normal,proto3" json:"normal,omitempty"`
	FrameId   string   `protobuf:"bytes,3,opt,name=frame_id,json=frameId,proto3" json:"frame_id,omitempty"`
	FaceIndex uint32   `protobuf:"varint,4,opt,name=face_index,json=faceIndex,proto3" json:"face_index,omitempty"`
}

func (m *SurfacePoint) Reset()         { *m = SurfacePoint{} }
func (m *SurfacePoint) String() string { return fmt.Sprintf("%+v", *m) }
func (*SurfacePoint) ProtoMessage()    {}

type ViewHint struct {
	ViewDirection *Vector3 `protobuf:"bytes,1,opt,name=view_direction,json=viewDirection,proto3" json:"view_direction,omitempty"`
	RollDeg       float64  `protobuf:"fixed64,2,opt,name=roll_deg,json=rollDeg,proto3" json:"roll_deg,omitempty"`
}

func (m *ViewHint) Reset()         { *m = ViewHint{} }
func (m *ViewHint) String() string { return fmt.Sprintf("%+v", *m) }
func (*ViewHint) ProtoMessage()    {}

type MediaRef struct {
	MediaId   string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	MimeType  string `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Sha256    string `protobuf:"bytes,3,opt,name=sha256,proto3" json:"sha256,omitempty"`
	Url       string `protobuf:"bytes,4,opt,name=url,proto3" json:"url,omitempty"`
	SizeBytes uint64 `protobuf:"varint,5,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
}

func (m *MediaRef) Reset()         { *m = MediaRef{} }
func (m *MediaRef) String() string { return fmt.Sprintf("%+v", *m) }
func (*MediaRef) ProtoMessage()    {}

type ImageRef struct {
	Media         *MediaRef `protobuf:"bytes,1,opt,name=media,proto3" json:"media,omitempty"`
	Width         uint32    `protobuf:"varint,2,opt,name=width,proto3" json:"width,omitempty"`
	Height        uint32    `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	ThumbnailJpeg []byte    `protobuf:"bytes,4,opt,name=thumbnail_jpeg,json=thumbnailJpeg,proto3" json:"thumbnail_jpeg,omitempty"`
}

func (m *ImageRef) Reset()         { *m = ImageRef{} }
func (m *ImageRef) String() string { return fmt.Sprintf("%+v", *m) }
func (*ImageRef) ProtoMessage()    {}

type BoundingBox2D struct {
	X int32 `protobuf:"varint,1,opt,name=x,proto3" json:"x,omitempty"`
	Y int32 `protobuf:"varint,2,opt,name=y,proto3" json:"y,omitempty"`
	W int32 `protobuf:"varint,3,opt,name=w,proto3" json:"w,omitempty"`
	H int32 `protobuf:"varint,4,opt,name=h,proto3" json:"h,omitempty"`
}

func (m *BoundingBox2D) Reset()         { *m = BoundingBox2D{} }
func (m *BoundingBox2D) String() string { return fmt.Sprintf("%+v", *m) }
func (*BoundingBox2D) ProtoMessage()    {}

type DefectResult struct {
	HasDefect  bool           `protobuf:"varint,1,opt,name=has_defect,json=hasDefect,proto3" json:"has_defect,omitempty"`
	DefectType string         `protobuf:"bytes,2,opt,name=defect_type,json=defectType,proto3" json:"defect_type,omitempty"`
	Confidence float32        `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Bbox       *BoundingBox2D `protobuf:"bytes,4,opt,name=bbox,proto3" json:"bbox,omitempty"`
}

func (m *DefectResult) Reset()         { *m = DefectResult{} }
func (m *DefectResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*DefectResult) ProtoMessage()    {}

type CaptureConfig struct {
	CameraId             string  `protobuf:"bytes,1,opt,name=camera_id,json=cameraId,proto3" json:"camera_id,omitempty"`
	FocusDistanceM       float64 `protobuf:"fixed64,2,opt,name=focus_distance_m,json=focusDistanceM,proto3" json:"focus_distance_m,omitempty"`
	FovHDeg              float64 `protobuf:"fixed64,3,opt,name=fov_h_deg,json=fovHDeg,proto3" json:"fov_h_deg,omitempty"`
	FovVDeg              float64 `protobuf:"fixed64,4,opt,name=fov_v_deg,json=fovVDeg,proto3" json:"fov_v_deg,omitempty"`
	MaxTiltFromNormalDeg float64 `protobuf:"fixed64,5,opt,name=max_tilt_from_normal_deg,json=maxTiltFromNormalDeg,proto3" json:"max_tilt_from_normal_deg,omitempty"`
}

func (m *CaptureConfig) Reset()         { *m = CaptureConfig{} }
func (m *CaptureConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*CaptureConfig) ProtoMessage()    {}

type InspectionTarget struct {
	PointId int32         `protobuf:"varint,1,opt,name=point_id,json=pointId,proto3" json:"point_id,omitempty"`
	GroupId string        `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Surface *SurfacePoint `protobuf:"bytes,3,opt,name=surface,proto3" json:"surface,omitempty"`
	View    *ViewHint     `protobuf:"bytes,4,opt,name=view,proto3" json:"view,omitempty"`
}

func (m *InspectionTarget) Reset()         { *m = InspectionTarget{} }
func (m *InspectionTarget) String() string { return fmt.Sprintf("%+v", *m) }
func (*InspectionTarget) ProtoMessage()    {}

type PlanningWeights struct {
	WAgvDistance    float64 `protobuf:"fixed64,1,opt,name=w_agv_distance,json=wAgvDistance,proto3" json:"w_agv_distance,omitempty"`
	WJointDelta     float64 `protobuf:"fixed64,2,opt,name=w_joint_delta,json=wJointDelta,proto3" json:"w_joint_delta,omitempty"`
	WManipulability float64 `protobuf:"fixed64,3,opt,name=w_manipulability,json=wManipulability,proto3" json:"w_manipulability,omitempty"`
	WViewError      float64 `protobuf:"fixed64,4,opt,name=w_view_error,json=wViewError,proto3" json:"w_view_error,omitempty"`
	WJointLimit     float64 `protobuf:"fixed64,5,opt,name=w_joint_limit,json=wJointLimit,proto3" json:"w_joint_limit,omitempty"`
}

func (m *PlanningWeights) Reset()         { *m = PlanningWeights{} }
func (m *PlanningWeights) String() string { return fmt.Sprintf("%+v", *m) }
func (*PlanningWeights) ProtoMessage()    {}

type PlanOptions struct {
	CandidateRadiusM      float64          `protobuf:"fixed64,1,opt,name=candidate_radius_m,json=candidateRadiusM,proto3" json:"candidate_radius_m,omitempty"`
	CandidateYawStepDeg   float64          `protobuf:"fixed64,2,opt,name=candidate_yaw_step_deg,json=candidateYawStepDeg,proto3" json:"candidate_yaw_step_deg,omitempty"`
	EnableCollisionCheck  bool             `protobuf:"varint,3,opt,name=enable_collision_check,json=enableCollisionCheck,proto3" json:"enable_collision_check,omitempty"`
	EnableTspOptimization bool             `protobuf:"varint,4,opt,name=enable_tsp_optimization,json=enableTspOptimization,proto3" json:"enable_tsp_optimization,omitempty"`
	IkSolver              string           `protobuf:"bytes,5,opt,name=ik_solver,json=ikSolver,proto3" json:"ik_solver,omitempty"`
	Weights               *PlanningWeights `protobuf:"bytes,6,opt,name=weights,proto3" json:"weights,omitempty"`
}

func (m *PlanOptions) Reset()         { *m = PlanOptions{} }
func (m *PlanOptions) String() string { return fmt.Sprintf("%+v", *m) }
func (*PlanOptions) ProtoMessage()    {}

type InspectionPoint struct {
	PointId         int32     `protobuf:"varint,1,opt,name=point_id,json=pointId,proto3" json:"point_id,omitempty"`
	GroupId         string    `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	AgvPose         *Pose2D   `protobuf:"bytes,3,opt,name=agv_pose,json=agvPose,proto3" json:"agv_pose,omitempty"`
	ArmPose         *Pose3D   `protobuf:"bytes,4,opt,name=arm_pose,json=armPose,proto3" json:"arm_pose,omitempty"`
	ArmJointGoal    []float64 `protobuf:"fixed64,5,rep,packed,name=arm_joint_goal,json=armJointGoal,proto3" json:"arm_joint_goal,omitempty"`
	ExpectedQuality float64   `protobuf:"fixed64,6,opt,name=expected_quality,json=expectedQuality,proto3" json:"expected_quality,omitempty"`
	PlanningCost    float64   `protobuf:"fixed64,7,opt,name=planning_cost,json=planningCost,proto3" json:"planning_cost,omitempty"`
	TcpPoseGoal     *Pose3D   `protobuf:"bytes,8,opt,name=tcp_pose_goal,json=tcpPoseGoal,proto3" json:"tcp_pose_goal,omitempty"`
	CameraPose      *Pose3D   `protobuf:"bytes,9,opt,name=camera_pose,json=cameraPose,proto3" json:"camera_pose,omitempty"`
	CameraId        string    `protobuf:"bytes,10,opt,name=camera_id,json=cameraId,proto3" json:"camera_id,omitempty"`
}

func (m *InspectionPoint) Reset()         { *m = InspectionPoint{} }
func (m *InspectionPoint) String() string { return fmt.Sprintf("%+v", *m) }
func (*InspectionPoint) ProtoMessage()    {}

type InspectionPath struct {
	Waypoints          []*InspectionPoint `protobuf:"bytes,1,rep,name=waypoints,proto3" json:"waypoints,omitempty"`
	TotalPoints        uint32             `protobuf:"varint,2,opt,name=total_points,json=totalPoints,proto3" json:"total_points,omitempty"`
	EstimatedDistanceM float64            `protobuf:"fixed64,3,opt,name=estimated_distance_m,json=estimatedDistanceM,proto3" json:"estimated_distance_m,omitempty"`
	EstimatedDurationS float64            `protobuf:"fixed64,4,opt,name=estimated_duration_s,json=estimatedDurationS,proto3" json:"estimated_duration_s,omitempty"`
}

func (m *InspectionPath) Reset()         { *m = InspectionPath{} }
func (m *InspectionPath) String() string { return fmt.Sprintf("%+v", *m) }
func (*InspectionPath) ProtoMessage()    {}

type PlanningStatistics struct {
	CandidatePoseCount     uint32  `protobuf:"varint,1,opt,name=candidate_pose_count,json=candidatePoseCount,proto3" json:"candidate_pose_count,omitempty"`
	IkSuccessCount         uint32  `protobuf:"varint,2,opt,name=ik_success_count,json=ikSuccessCount,proto3" json:"ik_success_count,omitempty"`
	CollisionFilteredCount uint32  `protobuf:"varint,3,opt,name=collision_filtered_count,json=collisionFilteredCount,proto3" json:"collision_filtered_count,omitempty"`
	PlanningTimeMs         float64 `protobuf:"fixed64,4,opt,name=planning_time_ms,json=planningTimeMs,proto3" json:"planning_time_ms,omitempty"`
}

func (m *PlanningStatistics) Reset()         { *m = PlanningStatistics{} }
func (m *PlanningStatistics) String() string { return fmt.Sprintf("%+v", *m) }
func (*PlanningStatistics) ProtoMessage()    {}

type AgvStatus struct {
	Connected           bool    `protobuf:"varint,1,opt,name=connected,proto3" json:"connected,omitempty"`
	Arrived             bool    `protobuf:"varint,2,opt,name=arrived,proto3" json:"arrived,omitempty"`
	Moving              bool    `protobuf:"varint,3,opt,name=moving,proto3" json:"moving,omitempty"`
	Stopped             bool    `protobuf:"varint,4,opt,name=stopped,proto3" json:"stopped,omitempty"`
	CurrentPose         *Pose2D `protobuf:"bytes,5,opt,name=current_pose,json=currentPose,proto3" json:"current_pose,omitempty"`
	BatteryPercent      float32 `protobuf:"fixed32,6,opt,name=battery_percent,json=batteryPercent,proto3" json:"battery_percent,omitempty"`
	ErrorCode           string  `protobuf:"bytes,7,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	LinearVelocityMps   float32 `protobuf:"fixed32,8,opt,name=linear_velocity_mps,json=linearVelocityMps,proto3" json:"linear_velocity_mps,omitempty"`
	AngularVelocityRps  float32 `protobuf:"fixed32,9,opt,name=angular_velocity_rps,json=angularVelocityRps,proto3" json:"angular_velocity_rps,omitempty"`
	GoalPose            *Pose2D `protobuf:"bytes,10,opt,name=goal_pose,json=goalPose,proto3" json:"goal_pose,omitempty"`
	MapId               string  `protobuf:"bytes,11,opt,name=map_id,json=mapId,proto3" json:"map_id,omitempty"`
	LocalizationQuality float32 `protobuf:"fixed32,12,opt,name=localization_quality,json=localizationQuality,proto3" json:"localization_quality,omitempty"`
}

func (m *AgvStatus) Reset()         { *m = AgvStatus{} }
func (m *AgvStatus) String() string { return fmt.Sprintf("%+v", *m) }
func (*AgvStatus) ProtoMessage()    {}

type ArmStatus struct {
	Connected      bool      `protobuf:"varint,1,opt,name=connected,proto3" json:"connected,omitempty"`
	Arrived        bool      `protobuf:"varint,2,opt,name=arrived,proto3" json:"arrived,omitempty"`
	Moving         bool      `protobuf:"varint,3,opt,name=moving,proto3" json:"moving,omitempty"`
	CurrentJoints  []float64 `protobuf:"fixed64,4,rep,packed,name=current_joints,json=currentJoints,proto3" json:"current_joints,omitempty"`
	Manipulability float64   `protobuf:"fixed64,5,opt,name=manipulability,proto3" json:"manipulability,omitempty"`
	ErrorCode      string    `protobuf:"bytes,6,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ServoEnabled   bool      `protobuf:"varint,7,opt,name=servo_enabled,json=servoEnabled,proto3" json:"servo_enabled,omitempty"`
	TcpPose        *Pose3D   `protobuf:"bytes,8,opt,name=tcp_pose,json=tcpPose,proto3" json:"tcp_pose,omitempty"`
	BasePose       *Pose3D   `protobuf:"bytes,9,opt,name=base_pose,json=basePose,proto3" json:"base_pose,omitempty"`
}

func (m *ArmStatus) Reset()         { *m = ArmStatus{} }
func (m *ArmStatus) String() string { return fmt.Sprintf("%+v", *m) }
func (*ArmStatus) ProtoMessage()    {}

type TaskStatus struct {
	TaskId               string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Phase                TaskPhase              `protobuf:"varint,2,opt,name=phase,proto3,enum=inspection.gateway.v1.TaskPhase" json:"phase,omitempty"`
	ProgressPercent      float32                `protobuf:"fixed32,3,opt,name=progress_percent,json=progressPercent,proto3" json:"progress_percent,omitempty"`
	CurrentAction        string                 `protobuf:"bytes,4,opt,name=current_action,json=currentAction,proto3" json:"current_action,omitempty"`
	ErrorMessage         string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Agv                  *AgvStatus             `protobuf:"bytes,6,opt,name=agv,proto3" json:"agv,omitempty"`
	Arm                  *ArmStatus             `protobuf:"bytes,7,opt,name=arm,proto3" json:"arm,omitempty"`
	UpdatedAt            *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	PlanId               string                 `protobuf:"bytes,9,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	TaskName             string                 `protobuf:"bytes,10,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	CurrentWaypointIndex uint32                 `protobuf:"varint,11,opt,name=current_waypoint_index,json=currentWaypointIndex,proto3" json:"current_waypoint_index,omitempty"`
	CurrentPointId       int32                  `protobuf:"varint,12,opt,name=current_point_id,json=currentPointId,proto3" json:"current_point_id,omitempty"`
	TotalWaypoints       uint32                 `protobuf:"varint,13,opt,name=total_waypoints,json=totalWaypoints,proto3" json:"total_waypoints,omitempty"`
	InterlockOk          bool                   `protobuf:"varint,14,opt,name=interlock_ok,json=interlockOk,proto3" json:"interlock_ok,omitempty"`
	InterlockMessage     string                 `protobuf:"bytes,15,opt,name=interlock_message,json=interlockMessage,proto3" json:"interlock_message,omitempty"`
	RemainingTimeEstS    float64                `protobuf:"fixed64,16,opt,name=remaining_time_est_s,json=remainingTimeEstS,proto3" json:"remaining_time_est_s,omitempty"`
	StartedAt            *timestamppb.Timestamp `protobuf:"bytes,17,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt           *timestamppb.Timestamp `protobuf:"bytes,18,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
}

func (m *TaskStatus) Reset()         { *m = TaskStatus{} }
func (m *TaskStatus) String() string { return fmt.Sprintf("%+v", *m) }
func (*TaskStatus) ProtoMessage()    {}

type InspectionEvent struct {
	TaskId     string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	PointId    int32                  `protobuf:"varint,2,opt,name=point_id,json=pointId,proto3" json:"point_id,omitempty"`
	Type       InspectionEventType    `protobuf:"varint,3,opt,name=type,proto3,enum=inspection.gateway.v1.InspectionEventType" json:"type,omitempty"`
	Message    string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	Defect     *DefectResult          `protobuf:"bytes,5,opt,name=defect,proto3" json:"defect,omitempty"`
	Timestamp  *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	CaptureId  string                 `protobuf:"bytes,7,opt,name=capture_id,json=captureId,proto3" json:"capture_id,omitempty"`
	CameraId   string                 `protobuf:"bytes,8,opt,name=camera_id,json=cameraId,proto3" json:"camera_id,omitempty"`
	Image      *ImageRef              `protobuf:"bytes,9,opt,name=image,proto3" json:"image,omitempty"`
	Defects    []*DefectResult        `protobuf:"bytes,10,rep,name=defects,proto3" json:"defects,omitempty"`
	CameraPose *Pose3D                `protobuf:"bytes,11,opt,name=camera_pose,json=cameraPose,proto3" json:"camera_pose,omitempty"`
}

func (m *InspectionEvent) Reset()         { *m = InspectionEvent{} }
func (m *InspectionEvent) String() string { return fmt.Sprintf("%+v", *m) }
func (*InspectionEvent) ProtoMessage()    {}

type CaptureRecord struct {
	TaskId     string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	PointId    int32                  `protobuf:"varint,2,opt,name=point_id,json=pointId,proto3" json:"point_id,omitempty"`
	CaptureId  string                 `protobuf:"bytes,3,opt,name=capture_id,json=captureId,proto3" json:"capture_id,omitempty"`
	CameraId   string                 `protobuf:"bytes,4,opt,name=camera_id,json=cameraId,proto3" json:"camera_id,omitempty"`
	Image      *ImageRef              `protobuf:"bytes,5,opt,name=image,proto3" json:"image,omitempty"`
	Defects    []*DefectResult        `protobuf:"bytes,6,rep,name=defects,proto3" json:"defects,omitempty"`
	CapturedAt *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=captured_at,json=capturedAt,proto3" json:"captured_at,omitempty"`
}

func (m *CaptureRecord) Reset()         { *m = CaptureRecord{} }
func (m *CaptureRecord) String() string { return fmt.Sprintf("%+v", *m) }
func (*CaptureRecord) ProtoMessage()    {}

type NavMapInfo struct {
	MapId               string                 `protobuf:"bytes,1,opt,name=map_id,json=mapId,proto3" json:"map_id,omitempty"`
	Name                string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ResolutionMPerPixel float64                `protobuf:"fixed64,3,opt,name=resolution_m_per_pixel,json=resolutionMPerPixel,proto3" json:"resolution_m_per_pixel,omitempty"`
	Width               uint32                 `protobuf:"varint,4,opt,name=width,proto3" json:"width,omitempty"`
	Height              uint32                 `protobuf:"varint,5,opt,name=height,proto3" json:"height,omitempty"`
	Origin              *Pose2D                `protobuf:"bytes,6,opt,name=origin,proto3" json:"origin,omitempty"`
	Image               *ImageRef              `protobuf:"bytes,7,opt,name=image,proto3" json:"image,omitempty"`
	UpdatedAt           *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *NavMapInfo) Reset()         { *m = NavMapInfo{} }
func (m *NavMapInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*NavMapInfo) ProtoMessage()    {}

// ---------------------------------------------------------------------------
// Request / response messages
// ---------------------------------------------------------------------------

type UploadCadChunk struct {
	UploadId   string `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	Filename   string `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Data       []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	ChunkIndex uint32 `protobuf:"varint,4,opt,name=chunk_index,json=chunkIndex,proto3" json:"chunk_index,omitempty"`
	Eof        bool   `protobuf:"varint,5,opt,name=eof,proto3" json:"eof,omitempty"`
}

func (m *UploadCadChunk) Reset()         { *m = UploadCadChunk{} }
func (m *UploadCadChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (*UploadCadChunk) ProtoMessage()    {}

type UploadCadResponse struct {
	Result  *Result `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	ModelId string  `protobuf:"bytes,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
}

func (m *UploadCadResponse) Reset()         { *m = UploadCadResponse{} }
func (m *UploadCadResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UploadCadResponse) ProtoMessage()    {}

type SetInspectionTargetsRequest struct {
	ModelId    string              `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	OperatorId string              `protobuf:"bytes,2,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	Capture    *CaptureConfig      `protobuf:"bytes,3,opt,name=capture,proto3" json:"capture,omitempty"`
	Targets    []*InspectionTarget `protobuf:"bytes,4,rep,name=targets,proto3" json:"targets,omitempty"`
}

func (m *SetInspectionTargetsRequest) Reset()         { *m = SetInspectionTargetsRequest{} }
func (m *SetInspectionTargetsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SetInspectionTargetsRequest) ProtoMessage()    {}

type SetInspectionTargetsResponse struct {
	Result       *Result `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	TotalTargets uint32  `protobuf:"varint,2,opt,name=total_targets,json=totalTargets,proto3" json:"total_targets,omitempty"`
}

func (m *SetInspectionTargetsResponse) Reset()         { *m = SetInspectionTargetsResponse{} }
func (m *SetInspectionTargetsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*SetInspectionTargetsResponse) ProtoMessage()    {}

type PlanInspectionRequest struct {
	ModelId  string       `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	TaskName string       `protobuf:"bytes,2,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	Options  *PlanOptions `protobuf:"bytes,3,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *PlanInspectionRequest) Reset()         { *m = PlanInspectionRequest{} }
func (m *PlanInspectionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PlanInspectionRequest) ProtoMessage()    {}

type PlanInspectionResponse struct {
	Result *Result             `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	PlanId string              `protobuf:"bytes,2,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	Path   *InspectionPath     `protobuf:"bytes,3,opt,name=path,proto3" json:"path,omitempty"`
	Stats  *PlanningStatistics `protobuf:"bytes,4,opt,name=stats,proto3" json:"stats,omitempty"`
}

func (m *PlanInspectionResponse) Reset()         { *m = PlanInspectionResponse{} }
func (m *PlanInspectionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PlanInspectionResponse) ProtoMessage()    {}

type GetPlanRequest struct {
	PlanId string `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
}

func (m *GetPlanRequest) Reset()         { *m = GetPlanRequest{} }
func (m *GetPlanRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetPlanRequest) ProtoMessage()    {}

type GetPlanResponse struct {
	Result    *Result                `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	PlanId    string                 `protobuf:"bytes,2,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	ModelId   string                 `protobuf:"bytes,3,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	TaskName  string                 `protobuf:"bytes,4,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	Options   *PlanOptions           `protobuf:"bytes,5,opt,name=options,proto3" json:"options,omitempty"`
	Path      *InspectionPath        `protobuf:"bytes,6,opt,name=path,proto3" json:"path,omitempty"`
	Stats     *PlanningStatistics    `protobuf:"bytes,7,opt,name=stats,proto3" json:"stats,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *GetPlanResponse) Reset()         { *m = GetPlanResponse{} }
func (m *GetPlanResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetPlanResponse) ProtoMessage()    {}

type StartInspectionRequest struct {
	PlanId string `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	DryRun bool   `protobuf:"varint,2,opt,name=dry_run,json=dryRun,proto3" json:"dry_run,omitempty"`
}

func (m *StartInspectionRequest) Reset()         { *m = StartInspectionRequest{} }
func (m *StartInspectionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StartInspectionRequest) ProtoMessage()    {}

type StartInspectionResponse struct {
	Result *Result `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	TaskId string  `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *StartInspectionResponse) Reset()         { *m = StartInspectionResponse{} }
func (m *StartInspectionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StartInspectionResponse) ProtoMessage()    {}

type ControlTaskRequest struct {
	TaskId string `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Reason string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (m *ControlTaskRequest) Reset()         { *m = ControlTaskRequest{} }
func (m *ControlTaskRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ControlTaskRequest) ProtoMessage()    {}

type ControlTaskResponse struct {
	Result *Result `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ControlTaskResponse) Reset()         { *m = ControlTaskResponse{} }
func (m *ControlTaskResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ControlTaskResponse) ProtoMessage()    {}

type GetTaskStatusRequest struct {
	TaskId string `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *GetTaskStatusRequest) Reset()         { *m = GetTaskStatusRequest{} }
func (m *GetTaskStatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTaskStatusRequest) ProtoMessage()    {}

type GetTaskStatusResponse struct {
	Status *TaskStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *GetTaskStatusResponse) Reset()         { *m = GetTaskStatusResponse{} }
func (m *GetTaskStatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTaskStatusResponse) ProtoMessage()    {}

type SubscribeRequest struct {
	TaskId          string `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	IncludeSnapshot bool   `protobuf:"varint,2,opt,name=include_snapshot,json=includeSnapshot,proto3" json:"include_snapshot,omitempty"`
}

func (m *SubscribeRequest) Reset()         { *m = SubscribeRequest{} }
func (m *SubscribeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubscribeRequest) ProtoMessage()    {}

type SystemStateEvent struct {
	Status *TaskStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *SystemStateEvent) Reset()         { *m = SystemStateEvent{} }
func (m *SystemStateEvent) String() string { return fmt.Sprintf("%+v", *m) }
func (*SystemStateEvent) ProtoMessage()    {}

type GetNavMapRequest struct {
	MapId                 string `protobuf:"bytes,1,opt,name=map_id,json=mapId,proto3" json:"map_id,omitempty"`
	IncludeImageThumbnail bool   `protobuf:"varint,2,opt,name=include_image_thumbnail,json=includeImageThumbnail,proto3" json:"include_image_thumbnail,omitempty"`
}

func (m *GetNavMapRequest) Reset()         { *m = GetNavMapRequest{} }
func (m *GetNavMapRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetNavMapRequest) ProtoMessage()    {}

type GetNavMapResponse struct {
	Result *Result     `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	Map    *NavMapInfo `protobuf:"bytes,2,opt,name=map,proto3" json:"map,omitempty"`
}

func (m *GetNavMapResponse) Reset()         { *m = GetNavMapResponse{} }
func (m *GetNavMapResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetNavMapResponse) ProtoMessage()    {}

type ListCapturesRequest struct {
	TaskId            string `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	PointId           int32  `protobuf:"varint,2,opt,name=point_id,json=pointId,proto3" json:"point_id,omitempty"`
	IncludeThumbnails bool   `protobuf:"varint,3,opt,name=include_thumbnails,json=includeThumbnails,proto3" json:"include_thumbnails,omitempty"`
}

func (m *ListCapturesRequest) Reset()         { *m = ListCapturesRequest{} }
func (m *ListCapturesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListCapturesRequest) ProtoMessage()    {}

type ListCapturesResponse struct {
	Result   *Result          `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	Captures []*CaptureRecord `protobuf:"bytes,2,rep,name=captures,proto3" json:"captures,omitempty"`
}

func (m *ListCapturesResponse) Reset()         { *m = ListCapturesResponse{} }
func (m *ListCapturesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListCapturesResponse) ProtoMessage()    {}

type DownloadMediaRequest struct {
	MediaId string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
}

func (m *DownloadMediaRequest) Reset()         { *m = DownloadMediaRequest{} }
func (m *DownloadMediaRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DownloadMediaRequest) ProtoMessage()    {}

type MediaChunk struct {
	Data       []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	ChunkIndex uint32 `protobuf:"varint,2,opt,name=chunk_index,json=chunkIndex,proto3" json:"chunk_index,omitempty"`
	Eof        bool   `protobuf:"varint,3,opt,name=eof,proto3" json:"eof,omitempty"`
}

func (m *MediaChunk) Reset()         { *m = MediaChunk{} }
func (m *MediaChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (*MediaChunk) ProtoMessage()    {}
