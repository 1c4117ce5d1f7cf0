// Package config loads renderer settings from YAML with layered defaults.
package config

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Colors  ColorConfig   `yaml:"colors"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig sizes the output frames.
type RenderConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
	Workers     int    `yaml:"workers"`
	Frames      int    `yaml:"frames"`
	Output      string `yaml:"output"` // printf pattern with one %d for multi-frame runs
}

// CameraConfig places the camera. The camera always aims at the origin.
type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	// OrbitDegrees is the total turntable sweep across a multi-frame run.
	OrbitDegrees float32 `yaml:"orbit_degrees"`
}

// LightConfig holds the point light and lighting scales.
type LightConfig struct {
	Position       [3]float32 `yaml:"position"`
	AmbientScale   float32    `yaml:"ambient_scale"`
	DiffuseScale   float32    `yaml:"diffuse_scale"`
	SpecularScale  float32    `yaml:"specular_scale"`
	SpecularPow    float32    `yaml:"specular_pow"`
	OcclusionScale float32    `yaml:"occlusion_scale"`
	OcclusionRange float32    `yaml:"occlusion_range"`
	OcclusionStep  float32    `yaml:"occlusion_step"`
}

// ColorConfig holds linear RGB colors in [0,1].
type ColorConfig struct {
	Background [3]float32 `yaml:"background"`
	Object     [3]float32 `yaml:"object"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:       1280,
			Height:      720,
			Supersample: 1,
			Frames:      1,
			Output:      "frame_%03d.png",
		},
		Camera: CameraConfig{
			Position:     [3]float32{3, 0, -1},
			FOVDegrees:   45,
			OrbitDegrees: 360,
		},
		Light: LightConfig{
			Position:       [3]float32{2, 2, -3},
			AmbientScale:   0.5,
			DiffuseScale:   0.5,
			SpecularScale:  0.5,
			SpecularPow:    10,
			OcclusionScale: 1,
			OcclusionRange: 3,
			OcclusionStep:  1,
		},
		Colors: ColorConfig{
			Background: [3]float32{0, 0, 0},
			Object:     [3]float32{1, 0, 0},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
