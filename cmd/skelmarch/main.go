// Command skelmarch renders a demo creature to PNG frames by sphere-tracing
// its signed distance field. Pose data normally arrives from an external
// driver; this command poses a static humanoid so the renderer can be
// exercised end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"go.uber.org/zap"

	"github.com/bisnad/skelmarch"
	"github.com/bisnad/skelmarch/internal/config"
	"github.com/bisnad/skelmarch/internal/logger"
	"github.com/bisnad/skelmarch/render"
	"github.com/bisnad/skelmarch/skeleton"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	output := flag.String("out", "", "output filename pattern, overrides config")
	frames := flag.Int("frames", 0, "number of turntable frames, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Render.Output = *output
	}
	if *frames > 0 {
		cfg.Render.Frames = *frames
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("render failed", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	scene, err := demoScene()
	if err != nil {
		return err
	}
	if err := scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}

	renderer, err := render.NewRenderer(render.Config{
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Supersample: cfg.Render.Supersample,
		Workers:     cfg.Render.Workers,
	})
	if err != nil {
		return err
	}

	shading := &render.Shading{
		Background: vec3(cfg.Colors.Background),
		Object:     vec3(cfg.Colors.Object),
		Light: render.Light{
			Position:       vec3(cfg.Light.Position),
			AmbientScale:   cfg.Light.AmbientScale,
			DiffuseScale:   cfg.Light.DiffuseScale,
			SpecularScale:  cfg.Light.SpecularScale,
			SpecularPow:    cfg.Light.SpecularPow,
			OcclusionScale: cfg.Light.OcclusionScale,
			OcclusionRange: cfg.Light.OcclusionRange,
			OcclusionStep:  cfg.Light.OcclusionStep,
		},
	}

	basePos := vec3(cfg.Camera.Position)
	orbitTarget := orbitRadians(cfg.Camera.OrbitDegrees)
	// Spring-smoothed orbit: the camera eases into the sweep instead of
	// stepping at constant angular velocity.
	spring := harmonica.NewSpring(harmonica.FPS(30), 1.5, 1)
	var angle, velocity float64

	nframes := cfg.Render.Frames
	if nframes < 1 {
		nframes = 1
	}
	for frame := 0; frame < nframes; frame++ {
		if nframes > 1 {
			angle, velocity = spring.Update(angle, velocity, orbitTarget)
		}
		cam := render.NewCamera(orbitZ(basePos, float32(angle)), cfg.Camera.FOVDegrees)

		start := time.Now()
		img := renderer.Render(scene, cam, shading)
		name := frameName(cfg.Render.Output, frame)
		if err := render.WritePNGFile(name, img); err != nil {
			return err
		}
		logger.Log.Info("rendered frame",
			zap.Int("frame", frame),
			zap.String("file", name),
			zap.Duration("took", time.Since(start)),
		)
	}
	return nil
}

// orbitZ rotates p about the world z axis, the creature's vertical.
func orbitZ(p ms3.Vec, radians float32) ms3.Vec {
	s, c := math32.Sincos(radians)
	return ms3.Vec{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y, Z: p.Z}
}

// orbitRadians converts the configured sweep to radians in the float64
// domain the spring simulation runs in.
func orbitRadians(degrees float32) float64 {
	return float64(degrees * (math32.Pi / 180))
}

// frameName expands a printf-style output pattern with the frame index.
// A pattern without a format verb names its file verbatim.
func frameName(pattern string, frame int) string {
	if strings.Contains(pattern, "%") {
		return fmt.Sprintf(pattern, frame)
	}
	return pattern
}

func vec3(v [3]float32) ms3.Vec {
	return ms3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// demoScene poses a static humanoid: sphere joints, capsule bones and a
// rounded slab of ground below the feet. Up is -z.
func demoScene() (*skelmarch.Scene, error) {
	sk, err := skeleton.New(demoJointPositions(), demoConnectivity())
	if err != nil {
		return nil, err
	}
	if sk.JointCount() != skelmarch.JointCount || sk.EdgeCount() != skelmarch.EdgeCount {
		return nil, fmt.Errorf("demo skeleton has %d joints and %d edges, want %d and %d",
			sk.JointCount(), sk.EdgeCount(), skelmarch.JointCount, skelmarch.EdgeCount)
	}

	var scene skelmarch.Scene
	for i, m := range sk.JointTransforms() {
		scene.Joints[i] = skelmarch.Primitive{
			Kind:         skelmarch.KindSphere,
			WorldToLocal: m,
			Size:         ms3.Vec{X: 0.06, Y: 0.06, Z: 0.06},
			Smoothing:    0.04,
		}
	}
	// Bigger cranium.
	scene.Joints[jointHead].Size = ms3.Vec{X: 0.11, Y: 0.11, Z: 0.11}

	edgeMats, edgeLengths := sk.EdgeTransforms()
	for i, m := range edgeMats {
		scene.Edges[i] = skelmarch.Primitive{
			Kind:         skelmarch.KindCapsule,
			WorldToLocal: m,
			Size:         ms3.Vec{X: 0.035, Y: 0.035, Z: 1},
			Rounding:     0.008,
			Smoothing:    0.04,
			Length:       edgeLengths[i],
		}
	}

	scene.Ground = skelmarch.Primitive{
		Kind:         skelmarch.KindBox,
		WorldToLocal: skelmarch.WorldToLocal(skelmarch.Translation(ms3.Vec{Z: 0.99})),
		Size:         ms3.Vec{X: 4, Y: 4, Z: 0.12},
		Rounding:     0.02,
		Smoothing:    0.05,
	}
	scene.JointEdgeSmoothing = 0.02
	scene.GroundSmoothing = 0.08
	return &scene, nil
}

// Joint indices of the demo humanoid, hips first. The layout mirrors a
// 28-joint mocap reduction: torso chain, two 7-joint arms, two 4-joint legs.
const (
	jointHips = iota
	jointSpine
	jointChest
	jointUpperChest
	jointNeck
	jointHead
	jointLeftShoulder
	jointLeftArm
	jointLeftForeArm
	jointLeftForeArmRoll
	jointLeftHand
	jointLeftInHandMiddle
	jointLeftHandMiddle
	jointRightShoulder
	jointRightArm
	jointRightForeArm
	jointRightForeArmRoll
	jointRightHand
	jointRightInHandMiddle
	jointRightHandMiddle
	jointLeftUpLeg
	jointLeftLeg
	jointLeftFoot
	jointLeftToeBase
	jointRightUpLeg
	jointRightLeg
	jointRightFoot
	jointRightToeBase
)

func demoJointPositions() []ms3.Vec {
	pos := make([]ms3.Vec, skelmarch.JointCount)
	// Torso rises along -z (the up direction), feet extend toward +z.
	pos[jointHips] = ms3.Vec{}
	pos[jointSpine] = ms3.Vec{Z: -0.15}
	pos[jointChest] = ms3.Vec{Z: -0.30}
	pos[jointUpperChest] = ms3.Vec{Z: -0.45}
	pos[jointNeck] = ms3.Vec{Z: -0.60}
	pos[jointHead] = ms3.Vec{Z: -0.75}

	arm := []ms3.Vec{
		{Y: 0.10, Z: -0.55}, // shoulder
		{Y: 0.25, Z: -0.55}, // upper arm
		{Y: 0.45, Z: -0.55}, // forearm
		{Y: 0.55, Z: -0.55}, // forearm roll
		{Y: 0.70, Z: -0.55}, // hand
		{Y: 0.78, Z: -0.55}, // in-hand
		{Y: 0.85, Z: -0.55}, // fingertip
	}
	for i, p := range arm {
		pos[jointLeftShoulder+i] = p
		p.Y = -p.Y
		pos[jointRightShoulder+i] = p
	}

	leg := []ms3.Vec{
		{Y: 0.10, Z: 0.05},          // upper leg
		{Y: 0.10, Z: 0.45},          // knee
		{Y: 0.10, Z: 0.85},          // ankle
		{X: 0.14, Y: 0.10, Z: 0.92}, // toes
	}
	for i, p := range leg {
		pos[jointLeftUpLeg+i] = p
		p.Y = -p.Y
		pos[jointRightUpLeg+i] = p
	}
	return pos
}

func demoConnectivity() [][]int {
	conn := make([][]int, skelmarch.JointCount)
	conn[jointHips] = []int{jointSpine, jointLeftUpLeg, jointRightUpLeg}
	conn[jointSpine] = []int{jointChest}
	conn[jointChest] = []int{jointUpperChest}
	conn[jointUpperChest] = []int{jointNeck, jointLeftShoulder, jointRightShoulder}
	conn[jointNeck] = []int{jointHead}
	for _, base := range []int{jointLeftShoulder, jointRightShoulder} {
		for i := 0; i < 6; i++ {
			conn[base+i] = []int{base + i + 1}
		}
	}
	for _, base := range []int{jointLeftUpLeg, jointRightUpLeg} {
		for i := 0; i < 3; i++ {
			conn[base+i] = []int{base + i + 1}
		}
	}
	return conn
}
