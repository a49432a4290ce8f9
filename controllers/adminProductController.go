package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Admin product handlers
func GetAdminProducts(ctx *gin.Context) {
	var products []models.Product
	if result := initializers.DB.Order("id").Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	var update models.Product
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Model(&product).Updates(map[string]any{
		"name":        update.Name,
		"description": update.Description,
		"price":       update.Price,
		"stock":       update.Stock,
		"category":    update.Category,
		"image_url":   update.ImageURL,
		"tags":        update.Tags,
	}).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	var updated models.Product
	if err := initializers.DB.First(&updated, productId).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImage stores a product photo in S3 and records its URL on
// the product.
func UploadProductImage(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}
	defer f.Close()

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "vegetable-dhukan"
	}

	// Unique key to prevent overwrites
	uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		initializers.Log.Error().Err(err).Str("file", file.Filename).Msg("S3 upload failed")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := initializers.DB.Model(&product).Update("image_url", result.Location).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Image uploaded but not saved", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     result.Location,
	})
}
