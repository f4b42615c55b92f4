package config

// FetchConfig controls the HTTP page client shared by all collectors.
type FetchConfig struct {
	// TimeoutSeconds bounds every page request. No retries are performed;
	// a timeout yields zero fragments for that URL.
	TimeoutSeconds int `json:"timeout_seconds"`
	// UserAgent identifies the client to the sites being read.
	UserAgent string `json:"user_agent"`
}

// SetDefaults applies sane defaults.
func (c *FetchConfig) SetDefaults() {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 25
	}
	if c.UserAgent == "" {
		c.UserAgent = "GodChecker/1.0 (+scheduled batch; public info only)"
	}
}
