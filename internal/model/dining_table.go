package model

// DiningTable adalah entitas meja: hanya nama, dipakai untuk pemetaan
// tempat duduk di kasir.
type DiningTable struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null" json:"nama"`
}

func (DiningTable) TableName() string {
	return "mejas"
}
