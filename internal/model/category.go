package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"nama" validate:"required,max=50"`
	Description string `gorm:"type:text" json:"deskripsi"`

	// Relasi: hapus kategori ikut menghapus menu di bawahnya
	Menus []Menu `gorm:"constraint:OnDelete:CASCADE;" json:"menus,omitempty"`
}

func (Category) TableName() string {
	return "kategoris"
}
