package model

// AccountModel is the GORM-specific struct for the externally owned 'accounts' table.
// Only the columns needed for staff resolution are mapped.
type AccountModel struct {
	UserID     string  `gorm:"type:text;primaryKey"`
	Role       string  `gorm:"type:varchar(32);not null;index"`
	BranchID   *int64  `gorm:"index"`
	BranchName *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// Migratable lists the tables this service owns. accounts is read-only here.
func Migratable() []any {
	return []any{
		&DeviceTokenModel{},
		&NotificationPreferencesModel{},
		&NotificationRecordModel{},
	}
}
