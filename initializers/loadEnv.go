package initializers

import "github.com/joho/godotenv"

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Log.Warn().Msg(".env file not found, using process environment")
	}
}
