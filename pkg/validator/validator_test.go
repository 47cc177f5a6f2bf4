package validator

import (
	"testing"

	"github.com/google/uuid"
)

type sampleRequest struct {
	Nama       string `json:"nama" validate:"required,max=5"`
	HargaJual  string `json:"harga_jual" validate:"required,priceformat"`
	IDKategori string `json:"id_kategori" validate:"omitempty,uuid"`
}

var sampleMessages = map[string]string{
	"nama.required":          "Nama wajib diisi.",
	"nama.max":               "Nama terlalu panjang.",
	"harga_jual.required":    "Harga jual wajib diisi.",
	"harga_jual.priceformat": "Harga jual harus berupa angka.",
}

func TestValidateStructLocalized_Passes(t *testing.T) {
	req := sampleRequest{Nama: "Teh", HargaJual: "15.000"}
	if errs := ValidateStructLocalized(&req, sampleMessages); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStructLocalized_TranslatesByJSONName(t *testing.T) {
	req := sampleRequest{Nama: "", HargaJual: "lima belas ribu"}
	errs := ValidateStructLocalized(&req, sampleMessages)

	if got := errs["nama"]; got != "Nama wajib diisi." {
		t.Errorf("nama message = %q", got)
	}
	if got := errs["harga_jual"]; got != "Harga jual harus berupa angka." {
		t.Errorf("harga_jual message = %q", got)
	}
}

func TestValidateStructLocalized_FallbackMessage(t *testing.T) {
	req := sampleRequest{Nama: "Teh", HargaJual: "15.000", IDKategori: "not-a-uuid"}
	errs := ValidateStructLocalized(&req, sampleMessages)

	// id_kategori.uuid tidak ada di katalog: harus tetap muncul dengan fallback
	if errs["id_kategori"] == "" {
		t.Fatal("expected fallback message for id_kategori")
	}
}

func TestValidateStructLocalized_SliceElementMessages(t *testing.T) {
	type bulkRequest struct {
		IDs []uuid.UUID `json:"ids" validate:"required,min=1,dive,uuid_required"`
	}
	msgs := map[string]string{
		"ids.*.uuid_required": "Pilihan tidak valid.",
	}

	// Error elemen ("ids[0]") harus dilaporkan di bawah nama field induknya
	errs := ValidateStructLocalized(&bulkRequest{IDs: []uuid.UUID{uuid.Nil}}, msgs)
	if got := errs["ids"]; got != "Pilihan tidak valid." {
		t.Errorf("ids message = %q", got)
	}
}

func TestUUIDRequiredRule(t *testing.T) {
	type ref struct {
		ID uuid.UUID `json:"id" validate:"uuid_required"`
	}

	if errs := ValidateStruct(&ref{ID: uuid.New()}); len(errs) != 0 {
		t.Errorf("valid uuid: unexpected errors %v", errs)
	}
	// uuid.Nil lolos tag required biasa, rule ini yang menangkapnya
	if errs := ValidateStruct(&ref{}); len(errs) == 0 {
		t.Error("nil uuid: expected an error")
	}
}

func TestPriceFormatRule(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"15.000", true},
		{"15000", true},
		{"0", true},
		{"", false},
		{"...", false},
		{"15,000", false},
		{"abc", false},
	}
	for _, tt := range tests {
		req := sampleRequest{Nama: "Teh", HargaJual: tt.in}
		errs := ValidateStructLocalized(&req, sampleMessages)
		if tt.ok && errs["harga_jual"] != "" {
			t.Errorf("priceformat(%q): unexpected error %q", tt.in, errs["harga_jual"])
		}
		if !tt.ok && errs["harga_jual"] == "" {
			t.Errorf("priceformat(%q): expected an error", tt.in)
		}
	}
}
