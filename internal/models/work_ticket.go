package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ImageURLList stores the hosted image references as a jsonb column.
type ImageURLList []string

func (l ImageURLList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ImageURLList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image url list type %T", value)
	}
}

type WorkTicket struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Price       float64      `gorm:"not null" json:"price"`
	WorkerName  string       `gorm:"size:100;not null" json:"workerName"`
	Description string       `gorm:"size:500" json:"description"`
	ImageURLs   ImageURLList `gorm:"type:jsonb" json:"imageUrls"`

	Status string `gorm:"size:20;default:'completed'" json:"status"`

	// OccurredAt is the business date the work was performed; it defaults
	// to the submission time when the employee does not supply one.
	OccurredAt time.Time `json:"occurredAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
