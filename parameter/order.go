package parameter

import "time"

// Order Generation
const (
	// OrderSpawnInterval is the repeating interval for pending order creation
	OrderSpawnInterval = 3 * time.Second

	// DifficultyInterval is the repeating interval for promoting one recipe into the ready pool
	DifficultyInterval = 5 * time.Second

	// OrderDuration is the countdown budget of an active order
	OrderDuration = 60 * time.Second

	// MaxPendingOrders caps unassigned orders, spawns are skipped while reached
	MaxPendingOrders = 8

	// TapReopenCooldown delays a freed tap before it accepts a new order
	TapReopenCooldown = 2 * time.Second
)

// Scoring
const (
	// ColorRange is the per-channel tolerance for a received color to match its section
	ColorRange = 20.0

	// MaxFailuresPerSection is the defect budget of out-of-tolerance colors per section
	MaxFailuresPerSection = 4
)
