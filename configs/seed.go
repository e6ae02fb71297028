package configs

import (
	"log"

	"expressfood/entity"
)

// SeedAnonymousUser makes sure the fallback identity for unauthenticated
// orders exists and returns its id. The row carries no usable password,
// so nobody can log in as it.
func SeedAnonymousUser(username string) (uint, error) {
	db := DB()

	var user entity.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return user.ID, nil
	}

	user = entity.User{
		Username: username,
		Password: "",
		Name:     "Guest",
	}
	if err := db.Create(&user).Error; err != nil {
		return 0, err
	}
	log.Println("seeded anonymous user:", username)
	return user.ID, nil
}

// SeedCatalog loads a starter catalog the first time the service runs
// against an empty store.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Express Pizza",
			Description: "Wood-fired pizza, delivered hot",
			LogoURL:     "/img/express-pizza.png",
			Address:     "12 Baker St",
			Products: []entity.Product{
				{Name: "Margherita", Price: 7.50, Description: "Tomato, mozzarella, basil", ImageURL: "/img/margherita.jpg"},
				{Name: "Pepperoni", Price: 8.90, ImageURL: "/img/pepperoni.jpg"},
				{Name: "Garlic Bread", Price: 3.20},
			},
		},
		{
			Name:        "Noodle House",
			Description: "Wok noodles and soups",
			Address:     "4 Canal Rd",
			Products: []entity.Product{
				{Name: "Pad Thai", Price: 9.40, Description: "Rice noodles, peanuts, lime"},
				{Name: "Tom Yum Soup", Price: 6.80},
			},
		},
	}

	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded catalog: %d restaurants", len(restaurants))
	return nil
}
