// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	CellSize     = 20
	MazeWidth    = 35
	MazeHeight   = 25
	MazeOffsetY  = 50 // space above the maze for the HUD
	MaxDeltaTime = 0.06

	// Player tuning. Cooldowns are in seconds.
	PlayerStepCooldown = 0.1
	ShootCooldown      = 0.25

	LaserSpeed       = 30.0 // cells per second
	LaserTrailLength = 8

	ExplosionDuration  = 0.34
	ExplosionMaxRadius = float64(CellSize)

	// Adversaries appear from level 2. Count and speed grow per level.
	AdversaryBaseSpeed     = 0.5 // steps per second
	AdversarySpeedPerLevel = 0.2
	MaxAdversaries         = 5

	SpawnMinPlayerDistance   = 5
	RespawnMinPlayerDistance = 3
	RespawnAreaSize          = 5 // respawns land near the maze entrance
	SpawnAttempts            = 100

	KillScore       = 100
	EscapeScoreBase = 1000

	HUDFontSize     = 16
	TitleFontSize   = 28
	OverlayFontSize = 28
)

// Retro palette.
var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	WallColor       = color.RGBA{255, 255, 255, 255}
	FloorColor      = color.RGBA{64, 64, 64, 255}
	ExitColor       = color.RGBA{0, 255, 0, 255}
	PlayerColor     = color.RGBA{255, 0, 0, 255}
	AdversaryColor  = color.RGBA{255, 165, 0, 255}
	LaserColor      = color.RGBA{255, 255, 0, 255}
	GunColor        = color.RGBA{255, 255, 255, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	TextDimColor    = color.RGBA{128, 128, 128, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	CompleteColor   = color.RGBA{0, 255, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}

	// Drawn largest-first, so the last color ends up innermost.
	ExplosionColors = []color.RGBA{
		{255, 255, 0, 255},
		{255, 165, 0, 255},
		{255, 0, 0, 255},
	}
)
