package model

import "time"

// StorageEntry mysql 存储后端使用的键值表，一个 key 对应一个序列化 blob
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:longtext" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
