package models

import (
	"github.com/google/uuid"
)

// ProgramAsset is the composite pricing aggregate of a program: one
// severity bucket per tier. Exactly one aggregate exists per program;
// replacing it deletes the prior aggregate with all buckets and assets.
type ProgramAsset struct {
	BaseModel
	ProgramID uuid.UUID        `json:"program_id" gorm:"type:uuid;not null;uniqueIndex"`
	Buckets   []SeverityBucket `json:"buckets,omitempty" gorm:"foreignKey:ProgramAssetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProgramAsset
func (ProgramAsset) TableName() string {
	return "program_assets"
}

// Bucket returns the severity bucket for the given tier, or nil
func (p *ProgramAsset) Bucket(level SeverityLevel) *SeverityBucket {
	for i := range p.Buckets {
		if p.Buckets[i].Level == level {
			return &p.Buckets[i]
		}
	}
	return nil
}

// AllAssets flattens the asset entries of all four buckets
func (p *ProgramAsset) AllAssets() []Asset {
	var assets []Asset
	for i := range p.Buckets {
		assets = append(assets, p.Buckets[i].Assets...)
	}
	return assets
}

// SeverityBucket groups the scannable assets of one payout tier together
// with the tier's price. Every asset entry back-references its bucket.
type SeverityBucket struct {
	BaseModel
	ProgramAssetID uuid.UUID     `json:"program_asset_id" gorm:"type:uuid;not null;index:idx_bucket_level,unique"`
	Level          SeverityLevel `json:"level" gorm:"size:10;not null;index:idx_bucket_level,unique" validate:"required"`
	Price          float64       `json:"price" gorm:"not null;check:price >= 0" validate:"gte=0"`

	Assets []Asset `json:"assets,omitempty" gorm:"foreignKey:BucketID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SeverityBucket
func (SeverityBucket) TableName() string {
	return "severity_buckets"
}

// Asset is a named scannable target entry (domain, IP, app) inside a
// severity bucket. Names are unique within the entry.
type Asset struct {
	BaseModel
	BucketID uuid.UUID `json:"bucket_id" gorm:"type:uuid;not null;index"`
	Type     string    `json:"type" gorm:"size:40;not null" validate:"required,max=40"`
	Names    []string  `json:"names" gorm:"type:jsonb;serializer:json" validate:"required,min=1"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}
