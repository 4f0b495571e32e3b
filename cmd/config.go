package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RequireDeliveryDate    bool
	OutboxBatchSize        int
}

// DefaultOutboxBatchSize is used when OUTBOX_BATCH_SIZE is not set.
const DefaultOutboxBatchSize = 100

// OutboxEnabled reports whether order changes are recorded and relayed to Kafka.
func (c Config) OutboxEnabled() bool {
	return c.KafkaHost != "" && c.KafkaOrderChangedTopic != ""
}
