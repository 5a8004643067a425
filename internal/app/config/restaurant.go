package config

import "restobill/go_backend/internal/domain/bill"

// Restaurant identity is fixed at build time.
const (
	restaurantName    = "Pandit Ji Food Junction"
	restaurantAddress = "Bhalswa Village First Indian & Chinese Restaurant"
	restaurantPhone   = "+91-8368813290"
	restaurantEmail   = "@panditji_food_junction"
	restaurantGSTIN   = "GSTIN: 27ABCDE1234F1Z5"
)

func Restaurant() bill.Profile {
	return bill.Profile{
		Name:    restaurantName,
		Address: restaurantAddress,
		Phone:   restaurantPhone,
		Email:   restaurantEmail,
		TaxID:   restaurantGSTIN,
	}
}
