package database

// Config holds configuration for the MongoDB connection.
type Config struct {
	// URI is the MongoDB connection string. It is read from MONGODB_URI.
	URI string `mapstructure:"uri" default:""`
	// Name overrides the database named in the URI path.
	Name string `mapstructure:"name" default:""`
	// Collection is the collection used for the write/delete round trip.
	Collection string `mapstructure:"collection" default:"tests"`
	// TimeoutSeconds bounds server selection and connection setup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
