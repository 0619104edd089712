package constants

// NATS Subjects
const (
	// Order lifecycle
	SubjectOrderCreated   = "order.created"
	SubjectOrderAssigned  = "order.assigned"
	SubjectOrderUnmatched = "order.unmatched"

	// Master location reporting
	SubjectMasterLocation = "master.location"
)

// NATS queue groups
const (
	QueueGroupMatching = "matching-service"
)
