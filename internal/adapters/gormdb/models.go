package gormdb_adapter

import "time"

// propertyModel - строка таблицы properties
type propertyModel struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name              string   `gorm:"size:255;not null"`
	Address           string   `gorm:"size:255;not null"`
	Latitude          *float64 `gorm:"type:decimal(9,6)"`
	Longitude         *float64 `gorm:"type:decimal(9,6)"`
	Station           string   `gorm:"size:255;not null;index"`
	WalkingMinutes    int      `gorm:"not null"`
	Rent              int      `gorm:"not null;index"`
	ManagementFee     *int
	Deposit           *int
	KeyMoney          *int
	FloorPlan         string  `gorm:"size:50;not null;index"`
	SizeSqm           float64 `gorm:"not null"`
	BuildingStructure string  `gorm:"size:50;not null"`
	BuiltYear         int     `gorm:"not null"`
	TotalFloors       *int
	Floor             int     `gorm:"not null"`
	CornerRoom        bool    `gorm:"not null"`
	Status            string  `gorm:"size:20;not null"`
	SiteURL           string  `gorm:"size:500;not null"`
	MainImageURL      *string `gorm:"size:500"`
	Geohash           string  `gorm:"size:12;not null;index"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`

	InternetProvider *internetProviderModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	BikeParkings     []bikeParkingModel     `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Notifications    []notificationModel    `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (propertyModel) TableName() string {
	return "properties"
}

// internetProviderModel - строка таблицы internet_providers, одна на объект
type internetProviderModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PropertyID int64 `gorm:"not null;uniqueIndex:idx_internet_providers_property_id"`

	FletsPlan    *string `gorm:"size:100"`
	AuHikariPlan *string `gorm:"size:100"`
	NuroPlan     *string `gorm:"size:100"`
	JcomPlan     *string `gorm:"size:100"`

	CheckedAt time.Time `gorm:"not null"`
}

func (internetProviderModel) TableName() string {
	return "internet_providers"
}

type bikeParkingModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PropertyID int64 `gorm:"not null;index"`

	ParkingName string   `gorm:"size:255;not null"`
	Address     string   `gorm:"size:255;not null"`
	Latitude    *float64 `gorm:"type:decimal(9,6)"`
	Longitude   *float64 `gorm:"type:decimal(9,6)"`
	Distance    *float64
	Fee         *string `gorm:"size:50"`
	ParkingURL  string  `gorm:"size:500;not null"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (bikeParkingModel) TableName() string {
	return "bike_parkings"
}

type notificationModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PropertyID int64 `gorm:"not null;index"`

	NotifiedAt    time.Time `gorm:"not null"`
	LineMessageID *string   `gorm:"size:255"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (notificationModel) TableName() string {
	return "notifications"
}
