package model

import "github.com/google/uuid"

type Menu struct {
	BaseModel
	Name        string    `gorm:"type:varchar(50);not null" json:"nama"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"id_kategori"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"kategori,omitempty"`
	CostPrice   int64     `gorm:"not null" json:"harga_modal"`
	SalePrice   int64     `gorm:"not null" json:"harga_jual"`
	Description string    `gorm:"type:text" json:"deskripsi"`
	PhotoPath   *string   `gorm:"type:varchar(255)" json:"foto"`
}

func (Menu) TableName() string {
	return "menus"
}

// MenuShowResponse is the display payload for the detail modal:
// harga sudah diformat dan waktu dibuat ditampilkan relatif.
type MenuShowResponse struct {
	Nama      string `json:"nama"`
	Kategori  string `json:"id_kategori"`
	HargaJual string `json:"harga_jual"`
	Deskripsi string `json:"deskripsi"`
	Foto      string `json:"foto"`
	Diff      string `json:"diff"`
}
