// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc/credentials"

	"github.com/roboinspect/gateway"
	"github.com/roboinspect/gateway/internal/config"
)

func newRootCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "inspectctl",
		Short:         "Drive an inspection gateway from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	root.PersistentFlags().StringVar(&cfg.Address, "address", cfg.Address, "gateway address (host:port)")
	root.PersistentFlags().DurationVar(&cfg.WaitTimeout, "timeout", cfg.WaitTimeout, "how long to wait for an operation outcome")

	root.AddCommand(
		newUploadCommand(cfg, logger),
		newTargetsCommand(cfg, logger),
		newPlanCommand(cfg, logger),
		newGetPlanCommand(cfg, logger),
		newStartCommand(cfg, logger),
		newControlCommand(cfg, logger, "pause", "Pause the running inspection task",
			func(c *gateway.Client, taskID, reason string) { c.PauseInspection(taskID, reason) }),
		newControlCommand(cfg, logger, "resume", "Resume a paused inspection task",
			func(c *gateway.Client, taskID, reason string) { c.ResumeInspection(taskID, reason) }),
		newControlCommand(cfg, logger, "stop", "Abort the running inspection task",
			func(c *gateway.Client, taskID, reason string) { c.StopInspection(taskID, reason) }),
		newStatusCommand(cfg, logger),
		newNavMapCommand(cfg, logger),
		newCapturesCommand(cfg, logger),
		newDownloadCommand(cfg, logger),
		newWatchCommand(cfg, logger),
	)
	return root
}

// newClient builds the gateway client from config and connects it.
func newClient(cfg *config.Config, logger *log.Logger) (*gateway.Client, error) {
	opts := []gateway.Option{
		gateway.WithLogger(logger),
		gateway.WithQueueDepth(cfg.QueueDepth),
	}
	if cfg.TLS {
		creds, err := transportCredentials(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gateway.WithTransportCredentials(creds))
	}

	client := gateway.New(opts...)
	if err := client.Connect(cfg.Address); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to %s: %w", cfg.Address, err)
	}
	return client, nil
}

func transportCredentials(cfg *config.Config) (credentials.TransportCredentials, error) {
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if cfg.CACertFile != "" {
		pem, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("read ca cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("parse ca cert %q: no certificates found", cfg.CACertFile)
		}
		tlsCfg.RootCAs = pool
	}
	if cfg.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client cert: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}
	return credentials.NewTLS(tlsCfg), nil
}

// runOp connects, dispatches one operation and drains events until done
// reports a terminal outcome or the wait timeout expires. Progress-style
// events are handled by done returning (false, nil).
func runOp(cmd *cobra.Command, cfg *config.Config, logger *log.Logger, op string, dispatch func(*gateway.Client), done func(gateway.Event) (bool, error)) error {
	_, span := otel.Tracer(gateway.TracerName).Start(cmd.Context(), op)
	defer span.End()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	dispatch(client)

	timeout := time.NewTimer(cfg.WaitTimeout)
	defer timeout.Stop()
	for {
		select {
		case <-timeout.C:
			return fmt.Errorf("%s: no outcome within %s", op, cfg.WaitTimeout)
		case ev, ok := <-client.Events():
			if !ok {
				return fmt.Errorf("%s: event channel closed", op)
			}
			finished, err := done(ev)
			if err != nil {
				return err
			}
			if finished {
				return nil
			}
		}
	}
}

// resultErr folds a failed Result into a CLI error.
func resultErr(op string, r gateway.Result) error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s: %s: %s", op, r.Code, r.Message)
}

func newUploadCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <cad-file>",
		Short: "Upload a CAD model to the gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, "upload",
				func(c *gateway.Client) { c.UploadCad(args[0]) },
				func(ev gateway.Event) (bool, error) {
					switch ev := ev.(type) {
					case gateway.UploadProgress:
						fmt.Fprintf(cmd.OutOrStdout(), "\r%3d%%", ev.Percent)
						return false, nil
					case gateway.UploadFinished:
						fmt.Fprintln(cmd.OutOrStdout())
						if err := resultErr("upload", ev.Result); err != nil {
							return false, err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "model id: %s\n", ev.ModelID)
						return true, nil
					}
					return false, nil
				})
		},
	}
}

func newTargetsCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	var operatorID string
	cmd := &cobra.Command{
		Use:   "targets <model-id> <targets-file>",
		Short: "Replace the target set for a CAD model from a TOML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			capture, targets, err := loadTargetsFile(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd, cfg, logger, "targets",
				func(c *gateway.Client) { c.SetInspectionTargets(args[0], operatorID, capture, targets) },
				func(ev gateway.Event) (bool, error) {
					set, ok := ev.(gateway.TargetsSet)
					if !ok {
						return false, nil
					}
					if err := resultErr("targets", set.Result); err != nil {
						return false, err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "targets accepted, total on gateway: %d\n", set.TotalTargets)
					return true, nil
				})
		},
	}
	cmd.Flags().StringVar(&operatorID, "operator", "", "operator identifier recorded with the target set")
	return cmd
}

func newPlanCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	var (
		taskName string
		opts     gateway.PlanOptions
	)
	cmd := &cobra.Command{
		Use:   "plan <model-id>",
		Short: "Compute an inspection path over the current target set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, "plan",
				func(c *gateway.Client) { c.PlanInspection(args[0], taskName, opts) },
				func(ev gateway.Event) (bool, error) {
					fin, ok := ev.(gateway.PlanFinished)
					if !ok {
						return false, nil
					}
					if err := resultErr("plan", fin.Response.Result); err != nil {
						return false, err
					}
					r := fin.Response
					fmt.Fprintf(cmd.OutOrStdout(), "plan %s: %d waypoints, %.1fm, ~%.0fs\n",
						r.PlanID, r.Path.TotalPoints, r.Path.EstimatedDistanceM, r.Path.EstimatedDurationS)
					return true, nil
				})
		},
	}
	cmd.Flags().StringVar(&taskName, "task-name", "", "human readable name for the planned task")
	cmd.Flags().Float64Var(&opts.CandidateRadiusM, "candidate-radius", 1.5, "AGV candidate pose radius in meters")
	cmd.Flags().Float64Var(&opts.CandidateYawStepDeg, "yaw-step", 15, "candidate yaw step in degrees")
	cmd.Flags().BoolVar(&opts.EnableCollisionCheck, "collision-check", true, "filter waypoints through collision checking")
	cmd.Flags().BoolVar(&opts.EnableTSPOptimization, "tsp", true, "optimize waypoint visit order")
	cmd.Flags().StringVar(&opts.IKSolver, "ik-solver", "", "inverse kinematics solver override")
	return cmd
}

func newGetPlanCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "getplan <plan-id>",
		Short: "Fetch a previously computed plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, "getplan",
				func(c *gateway.Client) { c.GetPlan(args[0]) },
				func(ev gateway.Event) (bool, error) {
					fetched, ok := ev.(gateway.PlanFetched)
					if !ok {
						return false, nil
					}
					if err := resultErr("getplan", fetched.Response.Result); err != nil {
						return false, err
					}
					r := fetched.Response
					fmt.Fprintf(cmd.OutOrStdout(), "plan %s (model %s, task %q): %d waypoints, created %s\n",
						r.PlanID, r.ModelID, r.TaskName, r.Path.TotalPoints, r.CreatedAt.Format(time.RFC3339))
					return true, nil
				})
		},
	}
}

func newStartCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "start <plan-id>",
		Short: "Start executing a computed plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, "start",
				func(c *gateway.Client) { c.StartInspection(args[0], dryRun) },
				func(ev gateway.Event) (bool, error) {
					started, ok := ev.(gateway.InspectionStarted)
					if !ok {
						return false, nil
					}
					if err := resultErr("start", started.Result); err != nil {
						return false, err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "task id: %s\n", started.TaskID)
					return true, nil
				})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the plan without moving the robot")
	return cmd
}

func newControlCommand(cfg *config.Config, logger *log.Logger, op, short string, dispatch func(*gateway.Client, string, string)) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   op + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, op,
				func(c *gateway.Client) { dispatch(c, args[0], reason) },
				func(ev gateway.Event) (bool, error) {
					fin, ok := ev.(gateway.ControlFinished)
					if !ok || fin.Op != op {
						return false, nil
					}
					if err := resultErr(op, fin.Result); err != nil {
						return false, err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s acknowledged\n", op)
					return true, nil
				})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in the gateway audit log")
	return cmd
}

func newStatusCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id>",
		Short: "Fetch a one-shot task status snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, "status",
				func(c *gateway.Client) { c.GetTaskStatus(args[0]) },
				func(ev gateway.Event) (bool, error) {
					switch ev := ev.(type) {
					case gateway.TaskStatusReceived:
						printTaskStatus(cmd, ev.Status)
						return true, nil
					case gateway.ErrorOccurred:
						return false, errors.New(ev.Message)
					}
					return false, nil
				})
		},
	}
}

func printTaskStatus(cmd *cobra.Command, st gateway.TaskStatus) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "task %s (%q): %s\n", st.TaskID, st.TaskName, st.Phase)
	fmt.Fprintf(out, "  progress: %.0f%%, waypoint %d/%d\n",
		st.ProgressPercent, st.CurrentWaypointIndex, st.TotalWaypoints)
	fmt.Fprintf(out, "  agv: battery %.0f%%, pose (%.2f, %.2f, %.1f)\n",
		st.AGV.BatteryPercent, st.AGV.CurrentPose.X, st.AGV.CurrentPose.Y, st.AGV.CurrentPose.Yaw)
	fmt.Fprintf(out, "  arm: moving=%v servo=%v\n", st.Arm.Moving, st.Arm.ServoEnabled)
	if st.CurrentAction != "" {
		fmt.Fprintf(out, "  action: %s\n", st.CurrentAction)
	}
	if st.ErrorMessage != "" {
		fmt.Fprintf(out, "  error: %s\n", st.ErrorMessage)
	}
}

func newNavMapCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "navmap [map-id]",
		Short: "Fetch the navigation map descriptor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapID := ""
			if len(args) == 1 {
				mapID = args[0]
			}
			return runOp(cmd, cfg, logger, "navmap",
				func(c *gateway.Client) { c.GetNavMap(mapID) },
				func(ev gateway.Event) (bool, error) {
					rcvd, ok := ev.(gateway.NavMapReceived)
					if !ok {
						return false, nil
					}
					if err := resultErr("navmap", rcvd.Result); err != nil {
						return false, err
					}
					m := rcvd.Map
					fmt.Fprintf(cmd.OutOrStdout(), "map %s (%q): %dx%d @ %.3fm/px, updated %s\n",
						m.MapID, m.Name, m.Width, m.Height, m.ResolutionMPerPixel, m.UpdatedAt.Format(time.RFC3339))
					return true, nil
				})
		},
	}
}

func newCapturesCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	var pointID int32
	cmd := &cobra.Command{
		Use:   "captures <task-id>",
		Short: "List capture records of an inspection task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, cfg, logger, "captures",
				func(c *gateway.Client) { c.ListCaptures(args[0], pointID) },
				func(ev gateway.Event) (bool, error) {
					listed, ok := ev.(gateway.CapturesListed)
					if !ok {
						return false, nil
					}
					if err := resultErr("captures", listed.Result); err != nil {
						return false, err
					}
					for _, rec := range listed.Captures {
						defects := 0
						for _, d := range rec.Defects {
							if d.HasDefect {
								defects++
							}
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%s point=%d camera=%s defects=%d media=%s\n",
							rec.CaptureID, rec.PointID, rec.CameraID, defects, rec.Image.Media.MediaID)
					}
					return true, nil
				})
		},
	}
	cmd.Flags().Int32Var(&pointID, "point", -1, "restrict to one inspection point, -1 for all")
	return cmd
}

func newDownloadCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "download <media-id>",
		Short: "Download a media payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				outPath = args[0]
			}
			return runOp(cmd, cfg, logger, "download",
				func(c *gateway.Client) { c.DownloadMedia(args[0]) },
				func(ev gateway.Event) (bool, error) {
					switch ev := ev.(type) {
					case gateway.MediaDownloaded:
						if err := os.WriteFile(outPath, ev.Data, 0o644); err != nil {
							return false, fmt.Errorf("write %s: %w", outPath, err)
						}
						fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(ev.Data), outPath)
						return true, nil
					case gateway.ErrorOccurred:
						return false, errors.New(ev.Message)
					}
					return false, nil
				})
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file, defaults to the media id")
	return cmd
}

func newWatchCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <task-id>",
		Short: "Stream task state and inspection events until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			client.SubscribeSystemState(args[0])
			client.SubscribeInspectionEvents(args[0])

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			out := cmd.OutOrStdout()
			for {
				select {
				case <-sigCh:
					return nil
				case <-cmd.Context().Done():
					return nil
				case ev, ok := <-client.Events():
					if !ok {
						return nil
					}
					switch ev := ev.(type) {
					case gateway.ConnStateChanged:
						fmt.Fprintf(out, "[conn] connected=%v\n", ev.Connected)
					case gateway.SystemStateReceived:
						fmt.Fprintf(out, "[state] %s: %.0f%% waypoint %d/%d\n",
							ev.Status.Phase, ev.Status.ProgressPercent,
							ev.Status.CurrentWaypointIndex, ev.Status.TotalWaypoints)
					case gateway.InspectionEventReceived:
						fmt.Fprintf(out, "[event] %s point=%d %s\n",
							ev.Event.Type, ev.Event.PointID, ev.Event.Message)
					case gateway.ErrorOccurred:
						fmt.Fprintf(out, "[error] %s\n", ev.Message)
					}
				}
			}
		},
	}
}
