package cmd

// Config carries the service configuration loaded from the environment.
// SeedRack* values describe the racks created at bootstrap when the
// storages table is empty.
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
	JWTSecret              string
	SeedRackCount          int
	SeedRackCapacity       int
	SeedRackRangeSize      int
}
