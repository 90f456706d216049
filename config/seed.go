package config

import (
	"log"

	"autocare-backend/models"

	"gorm.io/gorm"
)

var defaultServices = []models.Service{
	{
		Name:            "Oil Change",
		Description:     "Complete oil and filter change with multi-point inspection",
		Price:           "$49.99",
		Duration:        "30 mins",
		IconName:        "Droplets",
		LongDescription: "Regular oil changes are essential for maintaining your engine's health and performance. Our comprehensive service includes premium oil, a new filter, and a thorough inspection.",
		Included: models.StringList{
			"Up to 5 quarts of premium oil",
			"New oil filter installation",
			"Fluid level check and top-off",
			"Tire pressure check",
			"Multi-point vehicle inspection",
		},
		Benefits: models.StringList{
			"Extended engine life",
			"Better fuel economy",
			"Reduced engine wear",
			"Improved performance",
		},
	},
	{
		Name:            "Brake Service",
		Description:     "Complete brake inspection and service for optimal safety",
		Price:           "$199.99",
		Duration:        "90 mins",
		IconName:        "CircleStop",
		LongDescription: "Your safety is our priority. Our brake service includes a comprehensive inspection and repair of your entire braking system.",
		Included: models.StringList{
			"Brake pad inspection and replacement",
			"Rotor inspection and resurfacing",
			"Brake fluid check and replacement",
			"Caliper inspection",
			"Complete system test",
		},
		Benefits: models.StringList{
			"Maximum stopping power",
			"Enhanced safety",
			"Reduced brake noise",
			"Extended brake life",
		},
	},
	{
		Name:            "Tire Rotation",
		Description:     "Professional tire rotation to extend tire life",
		Price:           "$29.99",
		Duration:        "20 mins",
		IconName:        "CircleDot",
		LongDescription: "Regular tire rotation ensures even wear and extends the life of your tires, saving you money in the long run.",
		Included: models.StringList{
			"Tire rotation",
			"Tire pressure adjustment",
			"Visual tire inspection",
			"Balance check",
		},
		Benefits: models.StringList{
			"Even tire wear",
			"Extended tire life",
			"Improved handling",
			"Better fuel efficiency",
		},
	},
	{
		Name:            "Battery Service",
		Description:     "Battery testing and replacement service",
		Price:           "$79.99",
		Duration:        "25 mins",
		IconName:        "Zap",
		LongDescription: "Don't get stranded with a dead battery. Our battery service includes testing, cleaning, and replacement if needed.",
		Included: models.StringList{
			"Battery load test",
			"Terminal cleaning",
			"Cable inspection",
			"Charging system check",
			"Battery replacement (if needed)",
		},
		Benefits: models.StringList{
			"Reliable starting",
			"Prevent breakdowns",
			"Extended battery life",
			"Peace of mind",
		},
	},
	{
		Name:            "Engine Diagnostic",
		Description:     "Comprehensive engine diagnostic and troubleshooting",
		Price:           "$89.99",
		Duration:        "45 mins",
		IconName:        "Wrench",
		LongDescription: "Is your check engine light on? Our advanced diagnostic service will identify any issues with your vehicle's engine and systems.",
		Included: models.StringList{
			"Computer diagnostic scan",
			"Error code reading and interpretation",
			"System check",
			"Detailed report",
			"Repair recommendations",
		},
		Benefits: models.StringList{
			"Identify problems early",
			"Prevent major repairs",
			"Optimize performance",
			"Clear understanding of issues",
		},
	},
	{
		Name:            "Air Filter Replacement",
		Description:     "Engine and cabin air filter replacement",
		Price:           "$39.99",
		Duration:        "15 mins",
		IconName:        "Wind",
		LongDescription: "Clean air filters are essential for engine performance and cabin comfort. We replace both engine and cabin air filters.",
		Included: models.StringList{
			"Engine air filter replacement",
			"Cabin air filter replacement",
			"Filter housing cleaning",
			"System inspection",
		},
		Benefits: models.StringList{
			"Better engine performance",
			"Improved fuel efficiency",
			"Cleaner cabin air",
			"Extended engine life",
		},
	},
}

// SeedDatabase wipes the admin and service tables and recreates the default
// admin account and service catalog. Bookings are left untouched.
func SeedDatabase(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if err := db.Where("1 = 1").Delete(&models.Admin{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.Service{}).Error; err != nil {
		return err
	}

	log.Println("Creating admin user...")
	admin := models.Admin{
		Username: "admin",
		Password: "admin123",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin user created: username=admin, password=admin123")

	log.Println("Creating services...")
	for i := range defaultServices {
		service := defaultServices[i]
		if err := db.Create(&service).Error; err != nil {
			return err
		}
	}
	log.Printf("%d services created", len(defaultServices))

	return nil
}
