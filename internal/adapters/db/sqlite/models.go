package sqlite

type EntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Service   string `gorm:"not null;index"`
	Username  string `gorm:"not null"`
	Hint      string
	CreatedAt string `gorm:"column:created_at;not null;autoCreateTime:false"`
}

func (EntryModel) TableName() string { return "entries" }

type SubjectModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (SubjectModel) TableName() string { return "subjects" }

type GradeModel struct {
	ID        uint    `gorm:"primaryKey"`
	SubjectID uint    `gorm:"not null;index"`
	Grade     float64 `gorm:"not null"`
	Date      string  `gorm:"not null"`
}

func (GradeModel) TableName() string { return "grades" }
