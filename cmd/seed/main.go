package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vidtube/internal/model"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"
	"vidtube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	testUsers := []struct {
		email    string
		username string
		fullName string
		password string
	}{
		{"alice@test.com", "alice_films", "Alice Films", "password123"},
		{"bob@test.com", "bob_vlogs", "Bob Vlogs", "password123"},
		{"charlie@test.com", "charlie_codes", "Charlie Codes", "password123"},
		{"diana@test.com", "diana_travels", "Diana Travels", "password123"},
		{"eve@test.com", "eve_cooks", "Eve Cooks", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))
	videoIDs := make([]string, 0)

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:    userData.email,
			Username: userData.username,
			FullName: userData.fullName,
			Password: string(hashedPassword),
		}

		var existingUser model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		videosCount := 2 + (len(userIDs) % 3)
		log.Info("Creating %d videos for user %s", videosCount, user.Username)
		for i := 0; i < videosCount; i++ {
			videoID, err := createVideoWithThumbnail(db, s3Client, httpClient, user.ID, user.Username, i, log)
			if err != nil {
				log.Error("Failed to create video %d for user %s: %v", i+1, user.Username, err)
				continue
			}
			videoIDs = append(videoIDs, videoID)
			time.Sleep(200 * time.Millisecond)
		}

		tweet := &model.TweetModel{
			OwnerID: user.ID,
			Content: fmt.Sprintf("Hello from %s, new uploads coming soon!", user.Username),
		}
		if err := db.Create(tweet).Error; err != nil {
			log.Error("Failed to create tweet for user %s: %v", user.Username, err)
		}
	}

	// Everyone subscribes to every later-registered channel.
	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			sub := &model.SubscriptionModel{
				SubscriberID: userIDs[i],
				ChannelID:    userIDs[j],
			}
			if err := db.Create(sub).Error; err != nil {
				if !strings.Contains(err.Error(), "duplicate") {
					log.Error("Failed to create subscription: %v", err)
				}
				continue
			}
		}
	}
	log.Info("Created test subscriptions")

	for i, videoID := range videoIDs {
		for j, userID := range userIDs {
			if (i+j)%2 != 0 {
				continue
			}
			like := &model.LikeModel{
				UserID:     userID,
				TargetKind: "video",
				TargetID:   videoID,
			}
			if err := db.Create(like).Error; err != nil {
				if !strings.Contains(err.Error(), "duplicate") {
					log.Error("Failed to create like: %v", err)
				}
				continue
			}
			comment := &model.CommentModel{
				VideoID:  videoID,
				AuthorID: userID,
				Content:  fmt.Sprintf("Great video! Comment #%d", j+1),
			}
			if err := db.Create(comment).Error; err != nil {
				log.Error("Failed to create comment: %v", err)
			}
		}
	}
	log.Info("Created test likes and comments")

	if len(userIDs) > 0 && len(videoIDs) >= 3 {
		playlist := &model.PlaylistModel{
			OwnerID: userIDs[0],
			Name:    "Favorites",
		}
		if err := db.Create(playlist).Error; err != nil {
			log.Error("Failed to create playlist: %v", err)
		} else {
			for pos, videoID := range videoIDs[:3] {
				member := &model.PlaylistVideoModel{
					PlaylistID: playlist.ID,
					VideoID:    videoID,
					Position:   int64(pos),
				}
				if err := db.Create(member).Error; err != nil {
					log.Error("Failed to add video to playlist: %v", err)
				}
			}
			log.Info("Created test playlist with %d videos", 3)
		}
	}

	return nil
}

func createVideoWithThumbnail(db *gorm.DB, s3Client *s3.Client, httpClient *http.Client, userID, username string, index int, log *logger.Logger) (string, error) {
	thumbURL := fmt.Sprintf("https://picsum.photos/seed/%s-%d/640/360", username, index)

	log.Info("Fetching thumbnail from %s", thumbURL)
	resp, err := httpClient.Get(thumbURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("picsum API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return "", fmt.Errorf("received empty image data")
	}

	fileKey := fmt.Sprintf("thumbnails/%s/seed_%d.jpg", userID, index)
	log.Info("Uploading thumbnail to S3: %s", fileKey)
	uploadedURL, err := s3Client.UploadFile(fileKey, bytes.NewReader(imageData), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload thumbnail to S3: %w", err)
	}

	video := &model.VideoModel{
		OwnerID:      userID,
		Title:        fmt.Sprintf("Video #%d by %s", index+1, username),
		Description:  fmt.Sprintf("Seeded sample upload #%d", index+1),
		VideoURL:     fmt.Sprintf("https://example.com/videos/%s/seed_%d.mp4", userID, index),
		ThumbnailURL: uploadedURL,
		Duration:     60 + float64(index*30),
		Views:        int64(index * 17),
		IsPublished:  true,
	}

	if err := db.Create(video).Error; err != nil {
		return "", fmt.Errorf("failed to create video: %w", err)
	}

	log.Info("Created video: %s by %s", video.Title, username)
	return video.ID, nil
}
