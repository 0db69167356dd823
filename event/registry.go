package event

var typeNames = [eventTypeCount]string{
	EventGameReset:        "GameReset",
	EventInputAction:      "InputAction",
	EventGameOver:         "GameOver",
	EventDropSpawned:      "DropSpawned",
	EventDropDespawned:    "DropDespawned",
	EventCupSpawned:       "CupSpawned",
	EventCupRemoved:       "CupRemoved",
	EventSensorMoved:      "SensorMoved",
	EventCollisionStarted: "CollisionStarted",
	EventOrderSpawned:     "OrderSpawned",
	EventOrderServed:      "OrderServed",
	EventOrderFailed:      "OrderFailed",
	EventSoundRequest:     "SoundRequest",
}

// String returns the registered event name
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// TypeByName resolves an event name, used by the debug trace filter
func TypeByName(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}
