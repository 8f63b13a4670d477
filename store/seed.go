package store

import "github.com/gorent/backend-rental/models"

// SeedCars is the fixed catalog used by the in-memory store, ordered by id.
func SeedCars() []models.Car {
	return []models.Car{
		{
			ID: 1, Brand: "BMW", Model: "M4 Competition", Type: "Coupe",
			Year: 2023, Seats: 4, Gear: "Automatic", Color: "Alpine White",
			Price:       "$249/day",
			Description: "Twin-turbo straight-six coupe with track-ready handling and everyday comfort.",
			Image:       "/images/bmw-m4.jpg",
		},
		{
			ID: 2, Brand: "Mercedes-Benz", Model: "S 500", Type: "Sedan",
			Year: 2023, Seats: 5, Gear: "Automatic", Color: "Obsidian Black",
			Price:       "$299/day",
			Description: "Flagship luxury sedan with massaging seats and a whisper-quiet cabin.",
			Image:       "/images/mercedes-s500.jpg",
		},
		{
			ID: 3, Brand: "Audi", Model: "R8 V10", Type: "Sports",
			Year: 2022, Seats: 2, Gear: "Automatic", Color: "Suzuka Gray",
			Price:       "$449/day",
			Description: "Mid-engine V10 supercar with quattro all-wheel drive.",
			Image:       "/images/audi-r8.jpg",
		},
		{
			ID: 4, Brand: "Porsche", Model: "911 Carrera", Type: "Sports",
			Year: 2023, Seats: 4, Gear: "Automatic", Color: "Guards Red",
			Price:       "$399/day",
			Description: "The benchmark sports car, as at home on a canyon road as downtown.",
			Image:       "/images/porsche-911.jpg",
		},
		{
			ID: 5, Brand: "Range Rover", Model: "Sport HSE", Type: "SUV",
			Year: 2023, Seats: 5, Gear: "Automatic", Color: "Santorini Black",
			Price:       "$279/day",
			Description: "Commanding luxury SUV that shrugs off weather and rough roads alike.",
			Image:       "/images/range-rover-sport.jpg",
		},
		{
			ID: 6, Brand: "Tesla", Model: "Model S Plaid", Type: "Sedan",
			Year: 2023, Seats: 5, Gear: "Automatic", Color: "Pearl White",
			Price:       "$229/day",
			Description: "Tri-motor electric sedan with face-melting acceleration and 390 miles of range.",
			Image:       "/images/tesla-model-s.jpg",
		},
	}
}
