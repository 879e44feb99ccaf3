package testutils

import (
	"time"

	"agricoop-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Ahmad Zulkifli",
		Email:        "ahmad." + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Phone:        "+60-12-345-6789",
		Avatar:       "👤",
		Region:       "Perlis, Perlis",
	}
}

// WithRegion sets a custom region for the user
func (f *UserFactory) WithRegion(region string) *models.User {
	user := f.Create()
	user.Region = region
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// FarmFactory provides methods to create test Farm data
type FarmFactory struct{}

// NewFarmFactory creates a new FarmFactory
func NewFarmFactory() *FarmFactory {
	return &FarmFactory{}
}

// Create creates a test Farm with default values
func (f *FarmFactory) Create() *models.Farm {
	return &models.Farm{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:     uuid.New(),
		Name:       "Ladang Nanas Indah",
		Location:   "Kampung Baru, Perlis",
		TotalSize:  4.5,
		FarmerType: "Smallholder",
	}
}

// WithOwner sets the owner for the farm
func (f *FarmFactory) WithOwner(userID uuid.UUID) *models.Farm {
	farm := f.Create()
	farm.UserID = userID
	return farm
}

// WithVarieties adds crop varieties to the farm
func (f *FarmFactory) WithVarieties(varieties ...string) *models.Farm {
	farm := f.Create()
	for _, v := range varieties {
		farm.Varieties = append(farm.Varieties, models.FarmVariety{
			FarmID:   farm.ID,
			Variety:  v,
			AreaSize: 1.0,
		})
	}
	return farm
}

// BusinessFactory provides methods to create test Business data
type BusinessFactory struct{}

// NewBusinessFactory creates a new BusinessFactory
func NewBusinessFactory() *BusinessFactory {
	return &BusinessFactory{}
}

// Create creates a test Business with default values
func (f *BusinessFactory) Create() *models.Business {
	return &models.Business{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         uuid.New(),
		Name:           "Gerai Nanas Segar",
		Type:           models.BusinessTypeStall,
		Location:       "Pasar Besar, Kangar",
		Phone:          "+60-12-345-6789",
		OperatingHours: "8:00 AM - 6:00 PM",
	}
}

// WithOwner sets the owner for the business
func (f *BusinessFactory) WithOwner(userID uuid.UUID) *models.Business {
	business := f.Create()
	business.UserID = userID
	return business
}

// CertificationFactory provides methods to create test Certification data
type CertificationFactory struct{}

// NewCertificationFactory creates a new CertificationFactory
func NewCertificationFactory() *CertificationFactory {
	return &CertificationFactory{}
}

// Create creates a test Certification expiring in a year
func (f *CertificationFactory) Create() *models.Certification {
	return &models.Certification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:            uuid.New(),
		Type:              models.CertificationTypeMyGAP,
		CertificateNumber: "MyGAP-2024-00123",
		IssuedDate:        time.Now().AddDate(-1, 0, 0),
		ExpiryDate:        time.Now().AddDate(1, 0, 0),
		IssuingBody:       "Jabatan Pertanian Malaysia",
	}
}

// WithOwner sets the owner for the certification
func (f *CertificationFactory) WithOwner(userID uuid.UUID) *models.Certification {
	cert := f.Create()
	cert.UserID = userID
	return cert
}

// ExpiringIn sets the expiry a given duration from now
func (f *CertificationFactory) ExpiringIn(d time.Duration) *models.Certification {
	cert := f.Create()
	cert.ExpiryDate = time.Now().Add(d)
	return cert
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a test Announcement with default values
func (f *AnnouncementFactory) Create() *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:     uuid.New(),
		UserName:   "Ahmad Zulkifli",
		UserAvatar: "👤",
		Title:      "Subsidy application window open",
		Content:    "The fertilizer subsidy application closes at the end of the month.",
		Category:   "News",
	}
}

// WithAuthor sets the author for the announcement
func (f *AnnouncementFactory) WithAuthor(user *models.User) *models.Announcement {
	announcement := f.Create()
	announcement.UserID = user.ID
	announcement.UserName = user.Name
	announcement.UserAvatar = user.Avatar
	return announcement
}

// HarvestScheduleFactory provides methods to create test HarvestSchedule data
type HarvestScheduleFactory struct{}

// NewHarvestScheduleFactory creates a new HarvestScheduleFactory
func NewHarvestScheduleFactory() *HarvestScheduleFactory {
	return &HarvestScheduleFactory{}
}

// Create creates an active test schedule starting in two weeks
func (f *HarvestScheduleFactory) Create() *models.HarvestSchedule {
	start := time.Now().AddDate(0, 0, 14)
	return &models.HarvestSchedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:           uuid.New(),
		UserName:         "Ahmad Zulkifli",
		UserAvatar:       "👤",
		CropType:         "Pineapple",
		Variety:          "MD2",
		PlantedDate:      time.Now().AddDate(0, -14, 0),
		EstimatedYield:   12.5,
		HarvestStartDate: start,
		HarvestEndDate:   start.AddDate(0, 0, 7),
		Region:           "Perlis, Perlis",
		Status:           models.HarvestStatusActive,
	}
}

// WithOwner sets the owner for the schedule
func (f *HarvestScheduleFactory) WithOwner(user *models.User) *models.HarvestSchedule {
	schedule := f.Create()
	schedule.UserID = user.ID
	schedule.UserName = user.Name
	schedule.UserAvatar = user.Avatar
	schedule.Region = user.Region
	return schedule
}

// WithStart sets a custom harvest window start for the schedule
func (f *HarvestScheduleFactory) WithStart(start time.Time) *models.HarvestSchedule {
	schedule := f.Create()
	schedule.HarvestStartDate = start
	schedule.HarvestEndDate = start.AddDate(0, 0, 7)
	return schedule
}

// WithYield sets a custom estimated yield for the schedule
func (f *HarvestScheduleFactory) WithYield(yield float64) *models.HarvestSchedule {
	schedule := f.Create()
	schedule.EstimatedYield = yield
	return schedule
}

// ChatMessageFactory provides methods to create test ChatMessage data
type ChatMessageFactory struct{}

// NewChatMessageFactory creates a new ChatMessageFactory
func NewChatMessageFactory() *ChatMessageFactory {
	return &ChatMessageFactory{}
}

// Create creates a test ChatMessage with default values
func (f *ChatMessageFactory) Create() *models.ChatMessage {
	return &models.ChatMessage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ConflictDate: time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
		UserID:       uuid.New(),
		UserName:     "Ahmad Zulkifli",
		UserAvatar:   "👤",
		Message:      "I can move my harvest to the following week.",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User            *UserFactory
	Farm            *FarmFactory
	Business        *BusinessFactory
	Certification   *CertificationFactory
	Announcement    *AnnouncementFactory
	HarvestSchedule *HarvestScheduleFactory
	ChatMessage     *ChatMessageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:            NewUserFactory(),
		Farm:            NewFarmFactory(),
		Business:        NewBusinessFactory(),
		Certification:   NewCertificationFactory(),
		Announcement:    NewAnnouncementFactory(),
		HarvestSchedule: NewHarvestScheduleFactory(),
		ChatMessage:     NewChatMessageFactory(),
	}
}
