package main

import (
	"agricoop-backend/internal/config"
	"agricoop-backend/internal/database"
	"agricoop-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type MemberData struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	Phone        string `yaml:"phone,omitempty"`
	Avatar       string `yaml:"avatar,omitempty"`
	Region       string `yaml:"region"`
	BusinessName string `yaml:"business_name,omitempty"`
	BusinessType string `yaml:"business_type,omitempty"`
}

type FarmData struct {
	MemberEmail  string        `yaml:"member_email"`
	Name         string        `yaml:"name"`
	Location     string        `yaml:"location,omitempty"`
	GPSLatitude  string        `yaml:"gps_latitude,omitempty"`
	GPSLongitude string        `yaml:"gps_longitude,omitempty"`
	TotalSize    float64       `yaml:"total_size,omitempty"`
	FarmerType   string        `yaml:"farmer_type,omitempty"`
	Varieties    []VarietyData `yaml:"varieties,omitempty"`
}

type VarietyData struct {
	Variety  string  `yaml:"variety"`
	AreaSize float64 `yaml:"area_size"`
}

type HarvestData struct {
	MemberEmail      string  `yaml:"member_email"`
	CropType         string  `yaml:"crop_type"`
	Variety          string  `yaml:"variety,omitempty"`
	PlantedDate      string  `yaml:"planted_date,omitempty"`
	EstimatedYield   float64 `yaml:"estimated_yield"`
	HarvestStartDate string  `yaml:"harvest_start_date"`
	HarvestEndDate   string  `yaml:"harvest_end_date,omitempty"`
	Status           string  `yaml:"status,omitempty"`
	Notes            string  `yaml:"notes,omitempty"`
}

// File structures
type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type FarmsFile struct {
	Farms []FarmData `yaml:"farms"`
}

type HarvestsFile struct {
	Harvests []HarvestData `yaml:"harvests"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	farms, err := loadFarms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load farms: %w", err)
	}

	harvests, err := loadHarvests(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load harvests: %w", err)
	}

	// Create members first
	memberMap := make(map[string]*models.User)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
		}
		memberMap[memberData.Email] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(members))

	// Create farms
	farmCreated := 0
	for _, farmData := range farms {
		_, created, err := createFarm(db, farmData, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create farm %s: %v", farmData.Name, err)
			continue // Continue with other farms
		}
		if created {
			farmCreated++
		}
	}
	log.Printf("📋 Farms: %d created, %d total", farmCreated, len(farms))

	// Create harvest schedules
	harvestCreated := 0
	for _, harvestData := range harvests {
		_, created, err := createHarvest(db, harvestData, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create harvest for %s: %v", harvestData.MemberEmail, err)
			continue // Continue with other schedules
		}
		if created {
			harvestCreated++
		}
	}
	log.Printf("📋 Harvest schedules: %d created, %d total", harvestCreated, len(harvests))

	return nil
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

func loadFarms(dataDir string) ([]FarmData, error) {
	var allFarms []FarmData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "farms") {
			var file FarmsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allFarms = append(allFarms, file.Farms...)
		}
		return nil
	})

	return allFarms, err
}

func loadHarvests(dataDir string) ([]HarvestData, error) {
	var allHarvests []HarvestData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "harvests") {
			var file HarvestsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allHarvests = append(allHarvests, file.Harvests...)
		}
		return nil
	})

	return allHarvests, err
}

func createMember(db *gorm.DB, memberData MemberData) (*models.User, bool, error) {
	var member models.User
	if err := db.Where("email = ?", memberData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(memberData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			avatar := memberData.Avatar
			if avatar == "" {
				avatar = "👤"
			}

			member = models.User{
				Name:         memberData.Name,
				Email:        memberData.Email,
				PasswordHash: string(hash),
				Phone:        memberData.Phone,
				Avatar:       avatar,
				Region:       memberData.Region,
				BusinessName: memberData.BusinessName,
				BusinessType: memberData.BusinessType,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

func createFarm(db *gorm.DB, farmData FarmData, memberMap map[string]*models.User) (*models.Farm, bool, error) {
	member := memberMap[farmData.MemberEmail]
	if member == nil {
		return nil, false, fmt.Errorf("member %s not found for farm %s", farmData.MemberEmail, farmData.Name)
	}

	var farm models.Farm
	if err := db.Where("name = ? AND user_id = ?", farmData.Name, member.ID).First(&farm).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			varieties := make([]models.FarmVariety, 0, len(farmData.Varieties))
			for _, v := range farmData.Varieties {
				varieties = append(varieties, models.FarmVariety{
					Variety:  v.Variety,
					AreaSize: v.AreaSize,
				})
			}

			farm = models.Farm{
				UserID:       member.ID,
				Name:         farmData.Name,
				Location:     farmData.Location,
				GPSLatitude:  farmData.GPSLatitude,
				GPSLongitude: farmData.GPSLongitude,
				TotalSize:    farmData.TotalSize,
				FarmerType:   farmData.FarmerType,
				Varieties:    varieties,
			}

			if err := db.Create(&farm).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create farm: %w", err)
			}
			return &farm, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query farm: %w", err)
		}
	}

	return &farm, false, nil // created = false (existing)
}

func createHarvest(db *gorm.DB, harvestData HarvestData, memberMap map[string]*models.User) (*models.HarvestSchedule, bool, error) {
	member := memberMap[harvestData.MemberEmail]
	if member == nil {
		return nil, false, fmt.Errorf("member %s not found", harvestData.MemberEmail)
	}

	start, err := time.Parse("2006-01-02", harvestData.HarvestStartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid harvest_start_date %q: %w", harvestData.HarvestStartDate, err)
	}

	var end time.Time
	if harvestData.HarvestEndDate != "" {
		end, err = time.Parse("2006-01-02", harvestData.HarvestEndDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid harvest_end_date %q: %w", harvestData.HarvestEndDate, err)
		}
	}

	var planted time.Time
	if harvestData.PlantedDate != "" {
		planted, err = time.Parse("2006-01-02", harvestData.PlantedDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid planted_date %q: %w", harvestData.PlantedDate, err)
		}
	}

	status := models.HarvestStatusActive
	if harvestData.Status != "" {
		status = models.HarvestStatus(harvestData.Status)
		if !status.IsValid() {
			return nil, false, fmt.Errorf("invalid status %q", harvestData.Status)
		}
	}

	var schedule models.HarvestSchedule
	query := db.Where("user_id = ? AND crop_type = ? AND harvest_start_date = ?", member.ID, harvestData.CropType, start)
	if err := query.First(&schedule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			schedule = models.HarvestSchedule{
				UserID:           member.ID,
				UserName:         member.Name,
				UserAvatar:       member.Avatar,
				CropType:         harvestData.CropType,
				Variety:          harvestData.Variety,
				PlantedDate:      planted,
				EstimatedYield:   harvestData.EstimatedYield,
				HarvestStartDate: start,
				HarvestEndDate:   end,
				Region:           member.Region,
				Status:           status,
				Notes:            harvestData.Notes,
			}

			if err := db.Create(&schedule).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create harvest schedule: %w", err)
			}
			return &schedule, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query harvest schedule: %w", err)
		}
	}

	return &schedule, false, nil // created = false (existing)
}
