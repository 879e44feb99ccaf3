package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement is a community post visible to all members.
// Author name and avatar are denormalized for display without a join,
// matching the mobile client's document shape.
type Announcement struct {
	BaseModel
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserName      string    `json:"user_name" gorm:"size:100"`
	UserAvatar    string    `json:"user_avatar" gorm:"size:10;default:'👤'"`
	Title         string    `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Content       string    `json:"content" gorm:"type:text;not null" validate:"required"`
	Category      string    `json:"category" gorm:"size:50;index" validate:"max=50"`
	ImageURL      string    `json:"image_url" gorm:"size:500"`
	LikesCount    int       `json:"likes_count" gorm:"default:0"`
	CommentsCount int       `json:"comments_count" gorm:"default:0"`

	Likes    []AnnouncementLike `json:"-" gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE"`
	Comments []Comment          `json:"-" gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}

// AnnouncementLike records that a user liked an announcement (one row per user)
type AnnouncementLike struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AnnouncementID uuid.UUID `json:"announcement_id" gorm:"type:uuid;not null;uniqueIndex:idx_announcement_user"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_announcement_user"`
}

// TableName returns the table name for AnnouncementLike
func (AnnouncementLike) TableName() string {
	return "announcement_likes"
}

// BeforeCreate sets the UUID if not already set
func (l *AnnouncementLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
