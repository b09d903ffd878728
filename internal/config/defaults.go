package config

// Default returns the configuration used when no file is present: media
// under ./static, manifest at ./slides.json, live scanning on :8080.
func Default() Config {
	return Config{
		Paths: Paths{
			StaticDir: "static",
			Manifest:  "slides.json",
		},
		Server: Server{
			Addr:   ":8080",
			Source: "live",
		},
		Logging: Logging{
			Level:  "info",
			Format: "auto",
		},
	}
}
