package main

import "github.com/joho/godotenv"

// loadEnvFiles exports .env values into the process environment so viper's
// AutomaticEnv sees them. Variables already set by the runtime win.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
