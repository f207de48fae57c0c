// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/roboinspect/gateway"
)

// targetsFile is the TOML schema of a target-set file:
//
//	[capture]
//	camera_id = "cam0"
//	focus_distance_m = 0.35
//
//	[[targets]]
//	point_id = 1
//	group_id = "weld-seam-a"
//	position = [0.1, 0.2, 0.3]
//	normal = [0.0, 0.0, 1.0]
//	frame_id = "base_link"
//	face_index = 12
//	view_direction = [0.0, 0.0, -1.0]
//	roll_deg = 0.0
type targetsFile struct {
	Capture captureSection  `toml:"capture"`
	Targets []targetSection `toml:"targets"`
}

type captureSection struct {
	CameraID             string  `toml:"camera_id"`
	FocusDistanceM       float64 `toml:"focus_distance_m"`
	FOVHDeg              float64 `toml:"fov_h_deg"`
	FOVVDeg              float64 `toml:"fov_v_deg"`
	MaxTiltFromNormalDeg float64 `toml:"max_tilt_from_normal_deg"`
}

type targetSection struct {
	PointID       int32      `toml:"point_id"`
	GroupID       string     `toml:"group_id"`
	Position      [3]float64 `toml:"position"`
	Normal        [3]float64 `toml:"normal"`
	FrameID       string     `toml:"frame_id"`
	FaceIndex     uint32     `toml:"face_index"`
	ViewDirection [3]float64 `toml:"view_direction"`
	RollDeg       float64    `toml:"roll_deg"`
}

func loadTargetsFile(path string) (gateway.CaptureConfig, []gateway.InspectionTarget, error) {
	var decoded targetsFile
	if _, err := toml.DecodeFile(path, &decoded); err != nil {
		return gateway.CaptureConfig{}, nil, fmt.Errorf("decode targets file %q: %w", path, err)
	}
	if len(decoded.Targets) == 0 {
		return gateway.CaptureConfig{}, nil, fmt.Errorf("targets file %q: no targets", path)
	}

	capture := gateway.CaptureConfig{
		CameraID:             decoded.Capture.CameraID,
		FocusDistanceM:       decoded.Capture.FocusDistanceM,
		FOVHDeg:              decoded.Capture.FOVHDeg,
		FOVVDeg:              decoded.Capture.FOVVDeg,
		MaxTiltFromNormalDeg: decoded.Capture.MaxTiltFromNormalDeg,
	}

	targets := make([]gateway.InspectionTarget, 0, len(decoded.Targets))
	for _, t := range decoded.Targets {
		targets = append(targets, gateway.InspectionTarget{
			PointID: t.PointID,
			GroupID: t.GroupID,
			Surface: gateway.SurfacePoint{
				Position:  vec3(t.Position),
				Normal:    vec3(t.Normal),
				FrameID:   t.FrameID,
				FaceIndex: t.FaceIndex,
			},
			View: gateway.ViewHint{
				ViewDirection: vec3(t.ViewDirection),
				RollDeg:       t.RollDeg,
			},
		})
	}
	return capture, targets, nil
}

func vec3(v [3]float64) gateway.Vec3 {
	return gateway.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
