package configs

// RateLimit configures the per-IP token-bucket limiter applied to all API
// routes.
type RateLimit struct {
	// PerSecond is the sustained request rate allowed per client IP.
	PerSecond float64 `env:"PER_SECOND" envDefault:"50"`
	// Burst is the instantaneous burst size allowed per client IP.
	Burst int `env:"BURST" envDefault:"100"`
}
