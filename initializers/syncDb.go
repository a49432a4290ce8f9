package initializers

import (
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.Transaction{})
	if err != nil {
		Log.Fatal().Err(err).Msg("Database migration failed")
	}
	Log.Info().Msg("Database synced successfully.")
}
