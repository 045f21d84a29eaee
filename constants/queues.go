package constants

// QueueName identifies a named worker queue.
type QueueName string

const (
	QueueDefault      QueueName = "default"       // delivery-note chains
	QueueLong         QueueName = "long"          // PDF fan-out and page tasks
	QueueTollCreation QueueName = "toll_creation" // staging → toll projection
)
