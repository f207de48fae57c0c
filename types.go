// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import "time"

// ErrorCode classifies the outcome of a gateway operation. Values mirror the
// wire schema one-to-one; CodeInternal additionally covers transport-level
// failures (deadline exceeded, refused connection, broken stream).
type ErrorCode int32

const (
	CodeUnspecified ErrorCode = iota
	CodeOK
	CodeInvalidArgument
	CodeNotFound
	CodeTimeout
	CodeBusy
	CodeInternal
	CodeUnavailable
	CodeConflict
)

var errorCodeNames = map[ErrorCode]string{
	CodeUnspecified:     "unspecified",
	CodeOK:              "ok",
	CodeInvalidArgument: "invalid_argument",
	CodeNotFound:        "not_found",
	CodeTimeout:         "timeout",
	CodeBusy:            "busy",
	CodeInternal:        "internal",
	CodeUnavailable:     "unavailable",
	CodeConflict:        "conflict",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return "unspecified"
}

// Result is the tagged outcome carried by every operation's terminal event.
type Result struct {
	Code    ErrorCode
	Message string
}

// OK reports whether the operation completed successfully.
func (r Result) OK() bool { return r.Code == CodeOK }

// ---------------------------------------------------------------------------
// Geometry
// ---------------------------------------------------------------------------

// Vec3 is a plain 3-D vector in meters.
type Vec3 struct {
	X, Y, Z float64
}

// Quat is an orientation quaternion (x, y, z, w).
type Quat struct {
	X, Y, Z, W float64
}

type Pose2D struct {
	X       float64
	Y       float64
	Yaw     float64
	FrameID string
}

type Pose3D struct {
	Position    Vec3
	Orientation Quat
	FrameID     string
}

type SurfacePoint struct {
	Position  Vec3
	Normal    Vec3 // unit vector in FrameID
	FrameID   string
	FaceIndex uint32 // for CAD round-trip
}

type ViewHint struct {
	ViewDirection Vec3 // camera forward direction unit vector
	RollDeg       float64
}

// ---------------------------------------------------------------------------
// Media references
// ---------------------------------------------------------------------------

type MediaRef struct {
	MediaID   string
	MimeType  string
	SHA256    string
	URL       string
	SizeBytes uint64
}

type ImageRef struct {
	Media         MediaRef
	Width         uint32
	Height        uint32
	ThumbnailJPEG []byte // optional small preview for UI
}

// ---------------------------------------------------------------------------
// Defect / detection
// ---------------------------------------------------------------------------

type BoundingBox2D struct {
	X, Y, W, H int32
}

type DefectResult struct {
	HasDefect  bool
	DefectType string
	Confidence float32
	BBox       BoundingBox2D
}

// ---------------------------------------------------------------------------
// Capture configuration
// ---------------------------------------------------------------------------

type CaptureConfig struct {
	CameraID             string
	FocusDistanceM       float64
	FOVHDeg              float64
	FOVVDeg              float64
	MaxTiltFromNormalDeg float64
}

// ---------------------------------------------------------------------------
// Inspection target / plan
// ---------------------------------------------------------------------------

type InspectionTarget struct {
	PointID int32
	GroupID string
	Surface SurfacePoint
	View    ViewHint
}

type InspectionPoint struct {
	PointID         int32
	GroupID         string
	AGVPose         Pose2D
	ArmPose         Pose3D
	ArmJointGoal    [6]float64
	ExpectedQuality float64
	PlanningCost    float64
	TCPPoseGoal     Pose3D
	CameraPose      Pose3D
	CameraID        string
}

type InspectionPath struct {
	Waypoints          []InspectionPoint
	TotalPoints        uint32
	EstimatedDistanceM float64
	EstimatedDurationS float64
}

type PlanningWeights struct {
	AGVDistance    float64
	JointDelta     float64
	Manipulability float64
	ViewError      float64
	JointLimit     float64
}

type PlanOptions struct {
	CandidateRadiusM      float64
	CandidateYawStepDeg   float64
	EnableCollisionCheck  bool
	EnableTSPOptimization bool
	IKSolver              string
	Weights               PlanningWeights
}

type PlanningStatistics struct {
	CandidatePoseCount     uint32
	IKSuccessCount         uint32
	CollisionFilteredCount uint32
	PlanningTimeMs         float64
}

// ---------------------------------------------------------------------------
// Task status
// ---------------------------------------------------------------------------

// TaskPhase mirrors the wire schema's task phase enum.
type TaskPhase int32

const (
	PhaseUnspecified TaskPhase = iota
	PhaseIdle
	PhaseLocalizing
	PhasePlanning
	PhaseExecuting
	PhasePaused
	PhaseCompleted
	PhaseFailed
	PhaseStopped
)

var taskPhaseNames = map[TaskPhase]string{
	PhaseUnspecified: "unspecified",
	PhaseIdle:        "idle",
	PhaseLocalizing:  "localizing",
	PhasePlanning:    "planning",
	PhaseExecuting:   "executing",
	PhasePaused:      "paused",
	PhaseCompleted:   "completed",
	PhaseFailed:      "failed",
	PhaseStopped:     "stopped",
}

func (p TaskPhase) String() string {
	if s, ok := taskPhaseNames[p]; ok {
		return s
	}
	return "unspecified"
}

type AGVStatus struct {
	Connected           bool
	Arrived             bool
	Moving              bool
	Stopped             bool
	CurrentPose         Pose2D
	BatteryPercent      float32
	ErrorCode           string
	LinearVelocityMps   float32
	AngularVelocityRps  float32
	GoalPose            Pose2D
	MapID               string
	LocalizationQuality float32
}

type ArmStatus struct {
	Connected      bool
	Arrived        bool
	Moving         bool
	CurrentJoints  [6]float64
	Manipulability float64
	ErrorCode      string
	ServoEnabled   bool
	TCPPose        Pose3D
	BasePose       Pose3D
}

// TaskStatus is one snapshot of the executing inspection task. Zero time.Time
// fields mean "not reported yet", never the epoch.
type TaskStatus struct {
	TaskID               string
	Phase                TaskPhase
	ProgressPercent      float32
	CurrentAction        string
	ErrorMessage         string
	AGV                  AGVStatus
	Arm                  ArmStatus
	UpdatedAt            time.Time
	PlanID               string
	TaskName             string
	CurrentWaypointIndex uint32
	CurrentPointID       int32
	TotalWaypoints       uint32
	InterlockOK          bool
	InterlockMessage     string
	RemainingTimeEstS    float64
	StartedAt            time.Time
	FinishedAt           time.Time
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// InspectionEventType mirrors the wire schema's event type enum.
type InspectionEventType int32

const (
	EventUnspecified InspectionEventType = iota
	EventInfo
	EventWarn
	EventError
	EventCaptured
	EventDefectFound
)

var eventTypeNames = map[InspectionEventType]string{
	EventUnspecified: "unspecified",
	EventInfo:        "info",
	EventWarn:        "warn",
	EventError:       "error",
	EventCaptured:    "captured",
	EventDefectFound: "defect_found",
}

func (t InspectionEventType) String() string {
	if s, ok := eventTypeNames[t]; ok {
		return s
	}
	return "unspecified"
}

type InspectionEvent struct {
	TaskID     string
	PointID    int32
	Type       InspectionEventType
	Message    string
	Defect     DefectResult
	Timestamp  time.Time
	CaptureID  string
	CameraID   string
	Image      ImageRef
	Defects    []DefectResult
	CameraPose Pose3D
}

// ---------------------------------------------------------------------------
// Capture records
// ---------------------------------------------------------------------------

type CaptureRecord struct {
	TaskID     string
	PointID    int32
	CaptureID  string
	CameraID   string
	Image      ImageRef
	Defects    []DefectResult
	CapturedAt time.Time
}

// ---------------------------------------------------------------------------
// Navigation map
// ---------------------------------------------------------------------------

type NavMapInfo struct {
	MapID               string
	Name                string
	ResolutionMPerPixel float64
	Width               uint32
	Height              uint32
	Origin              Pose2D
	Image               ImageRef
	UpdatedAt           time.Time
}

// ---------------------------------------------------------------------------
// Compound RPC response types
// ---------------------------------------------------------------------------

type PlanResponse struct {
	Result Result
	PlanID string
	Path   InspectionPath
	Stats  PlanningStatistics
}

type GetPlanResponse struct {
	Result    Result
	PlanID    string
	ModelID   string
	TaskName  string
	Options   PlanOptions
	Path      InspectionPath
	Stats     PlanningStatistics
	CreatedAt time.Time
}
