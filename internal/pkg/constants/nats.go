package constants

// NATS subjects
const (
	// SubjectPositionUpdate carries every stored position sample as JSON
	SubjectPositionUpdate = "position.update"
)
