package seeders

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"kurniasari-api/config"
	"kurniasari-api/models"
	"kurniasari-api/utils"
)

// helper untuk pointer string
func ptrString(s string) *string {
	return &s
}

func ptrUint(v uint) *uint {
	return &v
}

func hash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h)
}

func Seed() {
	// ============= Seed Outlets =============
	outlets := []models.Outlet{
		{Name: "Outlet Malioboro", Status: models.OutletActive, LocationAlias: ptrString("malioboro"), Address: ptrString("Jl. Malioboro No. 12, Yogyakarta")},
		{Name: "Outlet Kaliurang", Status: models.OutletActive, LocationAlias: ptrString("kaliurang"), Address: ptrString("Jl. Kaliurang KM 5, Sleman")},
		{Name: "Outlet Kotagede", Status: models.OutletInactive, LocationAlias: ptrString("kotagede"), Address: ptrString("Jl. Kemasan No. 3, Kotagede")},
	}

	for _, outlet := range outlets {
		config.DB.FirstOrCreate(&outlet, models.Outlet{Name: outlet.Name})
	}

	var malioboro, kaliurang models.Outlet
	config.DB.Where("name = ?", "Outlet Malioboro").First(&malioboro)
	config.DB.Where("name = ?", "Outlet Kaliurang").First(&kaliurang)

	// ============= Seed Users =============
	users := []models.User{
		{Username: "admin", Password: hash("admin12345"), Role: models.RoleAdmin},
		{Username: "staff_malioboro", Password: hash("staff12345"), Role: models.RoleOutletStaff, OutletID: ptrUint(malioboro.ID)},
		{Username: "kurir_budi", Password: hash("kurir12345"), Role: models.RoleDeliveryman, OutletID: ptrUint(malioboro.ID)},
		{Username: "kurir_sari", Password: hash("kurir12345"), Role: models.RoleDeliveryman, OutletID: ptrUint(kaliurang.ID)},
		{Username: "kurir_joko", Password: hash("kurir12345"), Role: models.RoleDeliveryman},
	}

	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Orders =============
	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count == 0 {
		orders := []models.Order{
			{
				OrderNumber:   utils.GenerateOrderNumber(),
				CustomerName:  "Ibu Ratna",
				CustomerPhone: ptrString("081234567890"),
				PaymentStatus: models.PaymentPending,
				Total:         185000,
				Items: []models.OrderItem{
					{Name: "Bakpia Premium Keju", Quantity: 2, Price: 55000, Subtotal: 110000},
					{Name: "Yangko Original", Quantity: 3, Price: 25000, Subtotal: 75000},
				},
			},
			{
				OrderNumber:   utils.GenerateOrderNumber(),
				CustomerName:  "Pak Hendra",
				CustomerPhone: ptrString("081298765432"),
				PaymentStatus: models.PaymentPaid,
				Total:         120000,
				Items: []models.OrderItem{
					{Name: "Bakpia Kacang Hijau", Quantity: 4, Price: 30000, Subtotal: 120000},
				},
			},
		}

		for _, order := range orders {
			config.DB.Create(&order)
		}
	}

	fmt.Println("Seeding selesai: 3 outlets, 5 users, sample orders")
}
