package mapping

// Config holds configuration for the auto-mapping pass.
type Config struct {
	// Threshold is the similarity score an auto-mapping must strictly exceed
	// to be committed. Scores of exactly Threshold are routed to manual
	// resolution.
	Threshold int `mapstructure:"threshold" default:"80"`
}
