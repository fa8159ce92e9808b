package cmd

type Config struct {
	HTTPPort                 string
	BackendBaseURL           string
	OptimizerBaseURL         string
	HTTPClientTimeoutSeconds int
	StatisticsJobEnabled     bool
}
